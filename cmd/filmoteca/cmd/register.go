package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmoteca-hq/filmoteca-client/pkg/api"
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <email> <password>",
	Short: "Create an account and store the session token",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().Register(cmd.Context(), api.Registration{
			Name:     args[0],
			Email:    args[1],
			Password: args[2],
		})
		if !res.Success {
			return resultErr(res)
		}

		var payload api.AuthPayload
		if err := res.Decode(&payload); err != nil {
			return fmt.Errorf("decode register response: %w", err)
		}
		if payload.Token != "" {
			if err := a.Session().Save(payload.Token); err != nil {
				return fmt.Errorf("save session token: %w", err)
			}
		}

		fmt.Printf("Cuenta creada para %s\n", payload.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
