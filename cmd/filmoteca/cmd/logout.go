package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the server session and forget the stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		token, err := a.Session().Token()
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if token == "" {
			return fmt.Errorf("no hay sesión activa")
		}

		res := a.API().Logout(cmd.Context(), token)

		// The local token is dropped even when the server call fails, so a
		// dead session cannot get stuck on this machine.
		if err := a.Session().Clear(); err != nil {
			return fmt.Errorf("clear session token: %w", err)
		}
		if !res.Success {
			return resultErr(res)
		}

		fmt.Println("Sesión cerrada")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
