package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect aliasgate's configuration.

The configuration file is stored at ~/.config/aliasgate/config.yaml
(or $XDG_CONFIG_HOME/aliasgate/config.yaml if XDG_CONFIG_HOME is set).`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file path",
	Long:  `Print the path to the configuration file.`,
	Run:   runConfigPath,
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default configuration as YAML",
	Long: `Print the built-in default configuration as YAML.

Redirect the output to the config path to bootstrap a config file.`,
	RunE: runConfigDefault,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configDefaultCmd)
}

func runConfigPath(cmd *cobra.Command, args []string) {
	fmt.Println(config.Path())
}

func runConfigDefault(cmd *cobra.Command, args []string) error {
	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
