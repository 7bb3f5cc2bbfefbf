package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/custsearch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "custsearch",
	Short: "Search a customer database from the terminal",
	Long: `custsearch loads a static customer list (JSON) once and filters it as you
type. A query matches a customer when it appears, ignoring case, in the
customer's ID, name or NIC. At most 50 rows are shown; the reported count
always includes every match.

The dataset may be a local file, an http(s):// URL or an s3://bucket/key
object. Files ending in .gz or .zst are decompressed transparently.`,
	Args:         cobra.NoArgs,
	RunE:         runInteractive,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with ctx, which cancels dataset loads
// and log following.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/custsearch/config.yaml)")
	rootCmd.PersistentFlags().StringP("source", "s", "", "dataset location (path, http(s):// URL or s3://bucket/key)")
}

func initConfig() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("source.location", rootCmd.PersistentFlags().Lookup("source"))

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/custsearch")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CUSTSEARCH")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CUSTSEARCH_SOURCE_LOCATION for source.location
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
