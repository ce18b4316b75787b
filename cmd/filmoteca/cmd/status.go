package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session token is stored locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		authenticated, err := a.Session().IsAuthenticated()
		if err != nil {
			return fmt.Errorf("read session state: %w", err)
		}

		if authenticated {
			fmt.Println("Sesión activa")
		} else {
			fmt.Println("Sin sesión")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
