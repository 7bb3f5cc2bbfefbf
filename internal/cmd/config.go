package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/custsearch/internal/config"
	"github.com/Iron-Ham/custsearch/internal/errors"
	tuiconfig "github.com/Iron-Ham/custsearch/internal/tui/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify custsearch configuration",
	Long: `View or modify custsearch configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  custsearch config set source.location https://example.com/customers.json
  custsearch config set search.result_limit 100
  custsearch config set tui.theme nord

Valid keys:
  source.location      - Dataset path, http(s):// URL or s3://bucket/key
  source.s3.endpoint   - S3 endpoint host[:port]
  source.s3.region     - S3 region (empty to discover)
  source.s3.use_ssl    - Use https for S3 (true/false)
  search.result_limit  - Maximum rows shown (1-1000)
  tui.theme            - Options: default, dracula, nord, monokai, plain
  logging.enabled      - Write a log file (true/false)
  logging.level        - Options: debug, info, warn, error
  logging.dir          - Log directory
  logging.max_size_mb  - Rotate at this size
  logging.max_backups  - Rotated files to keep
  logging.compress     - Gzip rotated files (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/custsearch/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration interactively",
	Long: `Open a full-screen editor for every setting. Each change is validated
and saved to the config file immediately.`,
	RunE: runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}

// targetConfigFile is where set and edit write: the file in use, or the
// default location when none was found.
func targetConfigFile() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.ConfigFile()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	if _, err := config.Load(); err != nil {
		fmt.Fprintf(out, "Warning: configuration is invalid, showing defaults\n%v\n", err)
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	item, ok := tuiconfig.Lookup(key)
	if !ok {
		return fmt.Errorf("%w\nRun 'custsearch config set --help' to see valid keys",
			errors.NewNotFoundError("configuration key", key))
	}

	typedValue, err := tuiconfig.ParseValue(item, value)
	if err != nil {
		if item.Type == tuiconfig.TypeSelect {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, strings.Join(item.Options, ", "))
		}
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		return err
	}

	configFile := targetConfigFile()
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigContent is the commented file written by config init.
const defaultConfigContent = `# custsearch configuration

# Where the customer dataset is read from
source:
  # A local path, file:// URL, http(s):// URL or s3://bucket/key.
  # Locations ending in .gz or .zst are decompressed.
  location: customers.json
  # Used for s3:// locations
  s3:
    endpoint: s3.amazonaws.com
    region: ""
    use_ssl: true

search:
  # Maximum rows shown; the result count is never truncated
  result_limit: 50

# TUI (terminal user interface) settings
tui:
  # Options: default, dracula, nord, monokai, plain
  theme: default

# File logging for the search screen
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Empty means <config dir>/logs
  dir: ""
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'custsearch config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file or run 'custsearch config edit' to customize custsearch.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. $HOME/.config/custsearch/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: CUSTSEARCH_* (e.g., CUSTSEARCH_SOURCE_LOCATION)")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	return tuiconfig.Run(targetConfigFile())
}
