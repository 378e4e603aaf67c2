package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.dodge/configs/dodge.yaml or ./configs/dodge.yaml and edit it to change
the arena, the clock or the difficulty curve.

With --resolved, prints the configuration that would actually be used,
after the config search path and --difficulty are applied.

Examples:
  dodge config > ~/.dodge/configs/dodge.yaml
  dodge config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	enc.Close()
	fmt.Printf("# arena: %dx%d pixels\n", cfg.Arena.Dimension(), cfg.Arena.Dimension())
}
