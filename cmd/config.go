package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gofish configuration file",
	Long: `Commands for managing the gofish configuration file.

Values in the file can be overridden with GOFISH_PLAYER_NAME, GOFISH_SEED,
GOFISH_LOG_LINES and GOFISH_LOG_LEVEL, and those in turn by command line flags.`,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		fmt.Println(colorize.CyanString("# ") + colorize.HiWhiteString(config.GetConfigFilePath()))
		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

// configSetNameCmd represents the config set-name command
var configSetNameCmd = &cobra.Command{
	Use:   "set-name [name]",
	Short: "Set the default player name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("player name cannot be empty")
		}

		if err := config.SetPlayerName(name); err != nil {
			return fmt.Errorf("error setting player name: %v", err)
		}

		fmt.Printf("Default player name set to: %s\n", name)
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file and log directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()

		// Loading writes the default file when it is missing
		if _, err := config.LoadFile(configPath); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}
		fmt.Println("Config file initialized at:", configPath)

		logPath := config.GetLogFilePath()
		fmt.Println("Diagnostic log will be written to:", logPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetNameCmd)
	configCmd.AddCommand(configInitCmd)
}
