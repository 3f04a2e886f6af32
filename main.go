// memotest is a memory matching card game for the terminal.
//
// Usage:
//
//	memotest                  - Play (same as memotest play)
//	memotest play             - Play in this terminal
//	memotest ranking          - Show the ranking
//	memotest config show|set  - Show or change the saved settings
//	memotest serve            - Serve the game over SSH
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go-memotest/internal/assets"
	"go-memotest/internal/config"
	"go-memotest/internal/scoring"

	"github.com/spf13/cobra"
)

var (
	flagRows    int
	flagCols    int
	flagSet     int
	flagPlayers int
	flagSeed    uint64
	flagConfig  string
	flagRanking string
	flagFormat  string
	flagStore   string
	flagArt     []string
	flagLog     string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memotest",
	Short: "Memotest - find the pairs",
	Long: `Memotest is a memory card game: flip two cards per turn and find
every pair. Consecutive matches earn a streak bonus.

Examples:
  memotest
  memotest play --rows 4 --cols 5 --players 2
  memotest ranking
  memotest config set players 2
  memotest serve --ssh :2222`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagRows, "rows", 0, "Board rows, 3 or 4 (default from config)")
	pf.IntVar(&flagCols, "cols", 0, "Board columns, 4 or 5 (default from config)")
	pf.IntVar(&flagSet, "set", 0, "Art set, 1 or 2 (default from config)")
	pf.IntVar(&flagPlayers, "players", 0, "Number of players, 1 or 2 (default from config)")
	pf.Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to the config file (default ~/.config/go-memotest/config)")
	pf.StringVar(&flagRanking, "ranking", "", "Path to the ranking file (default depends on --store)")
	pf.StringVar(&flagFormat, "format", "ranking", "Text ranking format: ranking (name;score) or highscores (name,score,rows,columns)")
	pf.StringVar(&flagStore, "store", "text", "Ranking store: text, json or sqlite")
	pf.StringSliceVar(&flagArt, "art", nil, "Extra art set YAML files or directories")
	pf.StringVar(&flagLog, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

func configPath() (string, error) {
	if flagConfig != "" {
		return expandHome(flagConfig)
	}
	return config.DefaultPath()
}

// loadConfig reads the saved config and applies the board flags on top.
func loadConfig() (config.Config, error) {
	path, err := configPath()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if flagRows != 0 {
		cfg.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Columns = flagCols
	}
	if flagSet != 0 {
		cfg.ArtSet = flagSet
	}
	if flagPlayers != 0 {
		cfg.Players = flagPlayers
	}
	return cfg.Clamp(), nil
}

// openStorage opens the ranking store selected by --store. The closer is
// a no-op for file stores.
func openStorage() (scoring.RankingStorage, io.Closer, error) {
	path := flagRanking
	if path != "" {
		p, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	switch strings.ToLower(flagStore) {
	case "text", "":
		format, err := scoring.ParseTextFormat(flagFormat)
		if err != nil {
			return nil, nil, err
		}
		if path == "" {
			if path, err = defaultFile(rankingFile(format)); err != nil {
				return nil, nil, err
			}
		}
		return scoring.NewTextFileStorage(path, format), io.NopCloser(nil), nil
	case "json":
		if path == "" {
			p, err := defaultFile("ranking.json")
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		return scoring.NewJSONFileStorage(path), io.NopCloser(nil), nil
	case "sqlite":
		if path == "" {
			p, err := defaultFile("ranking.db")
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		s, err := scoring.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("unknown ranking store %q (use text, json or sqlite)", flagStore)
}

func rankingFile(f scoring.TextFormat) string {
	if f == scoring.FormatHighScores {
		return "highscores.txt"
	}
	return "ranking.txt"
}

// artLibrary returns the embedded art sets merged with the --art files.
func artLibrary() (*assets.Library, error) {
	lib, err := assets.DefaultLibrary()
	if err != nil {
		return nil, err
	}
	if len(flagArt) > 0 {
		sets, err := assets.LoadSets(flagArt)
		if err != nil {
			return nil, err
		}
		lib.Merge(sets...)
	}
	return lib, nil
}

func defaultFile(name string) (string, error) {
	dir, err := scoring.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
