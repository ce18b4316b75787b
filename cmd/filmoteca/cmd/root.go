package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmoteca-hq/filmoteca-client/internal/app"
	"github.com/filmoteca-hq/filmoteca-client/internal/config"
	"github.com/filmoteca-hq/filmoteca-client/internal/logger"
	"github.com/filmoteca-hq/filmoteca-client/pkg/api"
)

var (
	flagProfile string
	flagAPIURL  string
)

var rootCmd = &cobra.Command{
	Use:           "filmoteca",
	Short:         "Command line client for the filmoteca movie platform",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command tree.
func Execute() error {
	defer logger.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "environment profile id from the profiles file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "override the configured API base URL")
}

// newApp loads config and logger and wires the runtime for one invocation.
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	logger.InfoObj("filmoteca starting", "config", cfg)

	a, err := app.New(cfg, log, app.Options{
		ProfileID: flagProfile,
		BaseURL:   flagAPIURL,
	})
	if err != nil {
		logger.ErrorObj("failed to initialize runtime", "error", err.Error())
		return nil, err
	}
	return a, nil
}

// resultErr converts a failure envelope into a command error.
func resultErr(res api.Result) error {
	if res.Status != 0 {
		return fmt.Errorf("%s (HTTP %d)", res.Error, res.Status)
	}
	return fmt.Errorf("%s", res.Error)
}

// printData renders a success payload as indented JSON on stdout.
func printData(data json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(buf.String())
}
