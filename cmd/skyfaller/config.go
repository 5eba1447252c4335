package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfaller/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a run would use, as YAML.

The effective config honors --config and --difficulty. Save the output to
~/.skyfaller/configs/skyfaller.yaml or ./configs/skyfaller.yaml to customize it;
only the keys you change need to stay in the file.

Examples:
  skyfaller config
  skyfaller config --difficulty hard
  skyfaller config --defaults > ~/.skyfaller/configs/skyfaller.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _ := mustLoadGameConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
