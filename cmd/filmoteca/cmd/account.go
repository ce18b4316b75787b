package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account lifecycle operations",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <password>",
	Short: "Delete the authenticated account permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().DeleteAccount(cmd.Context(), args[0])
		if !res.Success {
			return resultErr(res)
		}

		if err := a.Session().Clear(); err != nil {
			return fmt.Errorf("clear session token: %w", err)
		}

		fmt.Println("Cuenta eliminada")
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountDeleteCmd)
	rootCmd.AddCommand(accountCmd)
}
