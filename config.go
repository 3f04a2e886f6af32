package main

import (
	"fmt"

	"go-memotest/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("error resolving config path: %w", err)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		fmt.Printf("# %s\n%s\n", path, cfg)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one saved setting. Keys: rows (3-4), columns (4-5),
set (1-2), players (1-2). Out of range values fall back to defaults.

Examples:
  memotest config set rows 4
  memotest config set players 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("error resolving config path: %w", err)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		cfg = cfg.Clamp()
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
		fmt.Println(cfg)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
