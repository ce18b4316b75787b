package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filmoteca-hq/filmoteca-client/pkg/api"
)

var (
	flagProfileName     string
	flagProfileEmail    string
	flagProfilePassword string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the authenticated account",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the authenticated account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().Profile(cmd.Context())
		if !res.Success {
			return resultErr(res)
		}

		printData(res.Data)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update account fields; unset flags are left untouched",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var update api.ProfileUpdate
		if cmd.Flags().Changed("name") {
			update.Name = &flagProfileName
		}
		if cmd.Flags().Changed("email") {
			update.Email = &flagProfileEmail
		}
		if cmd.Flags().Changed("password") {
			update.Password = &flagProfilePassword
		}
		if update.Name == nil && update.Email == nil && update.Password == nil {
			return fmt.Errorf("nothing to update: set --name, --email, or --password")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().UpdateProfile(cmd.Context(), update)
		if !res.Success {
			return resultErr(res)
		}

		fmt.Println("Perfil actualizado")
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&flagProfileName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVar(&flagProfileEmail, "email", "", "new email address")
	profileUpdateCmd.Flags().StringVar(&flagProfilePassword, "password", "", "new password")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
