package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

var cfgFile string

var errMissingSchema = errors.New("a schema document is required, pass --schema or set it in the config file")

var rootCmd = &cobra.Command{
	Use:   "jsonform",
	Short: "Build and render forms from JSON or YAML schemas",
	Long: `jsonform turns a JSON or YAML schema document into a form: render it
as static HTML, walk it as a terminal prompt sequence, or fill it in
interactively in a TUI and capture the submitted values.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/jsonform/config.yaml)")
	rootCmd.PersistentFlags().StringP("schema", "s", "",
		"schema document path or URL")
	rootCmd.PersistentFlags().String("strategy", "stacked",
		"layout strategy: stacked, grid, or paired")
	rootCmd.PersistentFlags().String("theme", "",
		"theme name passed to renderers")
	rootCmd.PersistentFlags().String("theme-variant", "",
		"theme variant within the selected theme")

	_ = viper.BindPFlag("schema", rootCmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	_ = viper.BindPFlag("theme.name", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("theme.variant", rootCmd.PersistentFlags().Lookup("theme-variant"))
}

func initConfig() {
	viper.SetDefault("strategy", "stacked")
	viper.SetDefault("renderer", "html")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if _, err := os.Stat(".jsonform.yaml"); err == nil {
			viper.SetConfigFile(".jsonform.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "jsonform"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("JSONFORM")
	viper.AutomaticEnv()

	// Missing config files are fine, the defaults carry.
	_ = viper.ReadInConfig()
}

// schemaSource resolves the --schema flag (or config value) into a loader
// Source. URLs and file paths are both accepted.
func schemaSource() (schema.Source, error) {
	raw := strings.TrimSpace(viper.GetString("schema"))
	if raw == "" {
		return nil, errMissingSchema
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return schema.SourceFromURL(raw), nil
	}
	return schema.SourceFromFile(raw), nil
}

// execute runs the root command.
func execute() error {
	return rootCmd.Execute()
}

// setVersion sets the version string (called from main with ldflags).
func setVersion(v string) {
	rootCmd.Version = v
}
