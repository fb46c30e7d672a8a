package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/userconfig"
)

// NewConfigCmd creates the config command group
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage local CLI configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-url <api-url>",
		Short: "Set the API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := userconfig.SetAPIURL(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ API URL set to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiURL := ""
			if f := cmd.Flag("api-url"); f != nil {
				apiURL = f.Value.String()
			}
			fmt.Printf("API URL: %s\n", ResolveAPIURL(apiURL))

			path, err := userconfig.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Printf("Config:  %s\n", path)
			return nil
		},
	})

	return cmd
}
