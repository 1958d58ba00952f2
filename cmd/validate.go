package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateConfigFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a mapping configuration",
	Long: `Validate a mapping configuration YAML file without generating a graph.

Examples:
  rdfmap validate --config mapping.yaml
  rdfmap validate   # checks the embedded default configuration`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Mapping configuration YAML file (default: embedded)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(validateConfigFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Configuration OK: %d namespaces, %d column mappings, %d keyword columns, output format %s\n",
		len(cfg.Namespaces), len(cfg.ColumnMappings), len(cfg.KeywordSettings.Columns), cfg.Settings.OutputFormat)
	return nil
}
