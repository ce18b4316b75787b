package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Password recovery operations",
}

var passwordRecoverCmd = &cobra.Command{
	Use:   "recover <email>",
	Short: "Request a password recovery email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().RecoverPassword(cmd.Context(), args[0])
		if !res.Success {
			return resultErr(res)
		}

		fmt.Println("Correo de recuperación enviado")
		return nil
	},
}

var passwordResetCmd = &cobra.Command{
	Use:   "reset <token> <new-password>",
	Short: "Set a new password using the emailed reset token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().ResetPassword(cmd.Context(), args[0], args[1])
		if !res.Success {
			return resultErr(res)
		}

		fmt.Println("Contraseña actualizada")
		return nil
	},
}

func init() {
	passwordCmd.AddCommand(passwordRecoverCmd)
	passwordCmd.AddCommand(passwordResetCmd)
	rootCmd.AddCommand(passwordCmd)
}
