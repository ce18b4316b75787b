package cmd

import (
	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse the movie catalog",
}

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the movie catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().Movies(cmd.Context())
		if !res.Success {
			return resultErr(res)
		}

		printData(res.Data)
		return nil
	},
}

var moviesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single movie by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res := a.API().MovieByID(cmd.Context(), args[0])
		if !res.Success {
			return resultErr(res)
		}

		printData(res.Data)
		return nil
	},
}

func init() {
	moviesCmd.AddCommand(moviesListCmd)
	moviesCmd.AddCommand(moviesGetCmd)
	rootCmd.AddCommand(moviesCmd)
}
