// filepath: internal/cli/config_command.go
package cli

import (
	"fmt"
	"os"

	"retrohub/internal/config"
	"retrohub/internal/logging"

	"github.com/spf13/cobra"
)

var forceWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config path",
	Long: `Writes the configuration resolved from file, environment and flags
(with defaults applied) to --config_path. An existing file is kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeEffectiveConfig(cfgFile, forceWrite)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceWrite, "force", false, "Overwrite an existing config file.")
	configCmd.AddCommand(configInitCmd)
	RootCmd.AddCommand(configCmd)
}

func writeEffectiveConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}
	if err := config.SaveConfig(path, cfg); err != nil {
		return err
	}
	logging.Log.Infof("Configuration written to %s.", path)
	return nil
}
