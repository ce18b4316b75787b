package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmoteca-hq/filmoteca-client/pkg/api"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate and store the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().Login(cmd.Context(), api.Credentials{
			Email:    args[0],
			Password: args[1],
		})
		if !res.Success {
			return resultErr(res)
		}

		var payload api.AuthPayload
		if err := res.Decode(&payload); err != nil {
			return fmt.Errorf("decode login response: %w", err)
		}
		if payload.Token == "" {
			return fmt.Errorf("login response carried no token")
		}
		if err := a.Session().Save(payload.Token); err != nil {
			return fmt.Errorf("save session token: %w", err)
		}

		fmt.Printf("Sesión iniciada como %s\n", payload.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
