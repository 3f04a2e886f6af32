package main

import (
	"fmt"
	"os"
	"os/user"

	"go-memotest/internal/assets"
	"go-memotest/internal/logging"
	"go-memotest/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagName  string
	flagName2 string
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a match in this terminal. The menu choices are saved to the
config file for the next session.

Controls:
  Mouse            - Hover and flip cards
  Arrows/hjkl      - Move the cursor
  Space/Enter      - Flip the card under the cursor
  R                - Restart
  M                - Back to the menu
  Esc/Q/Ctrl+C     - Quit

Examples:
  memotest play
  memotest play --name Ana --players 2 --name2 Beto
  memotest play --store sqlite --ranking ./ranking.db`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagName, "name", "", "Player 1 name (default: your user name)")
		cmd.Flags().StringVar(&flagName2, "name2", "", "Player 2 name")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfgPath, err := configPath()
	if err != nil {
		return fmt.Errorf("error resolving config path: %w", err)
	}

	storage, closer, err := openStorage()
	if err != nil {
		return fmt.Errorf("error opening ranking: %w", err)
	}
	defer closer.Close()

	lib, err := artLibrary()
	if err != nil {
		return fmt.Errorf("error loading art: %w", err)
	}

	logger, logCloser, err := logging.OpenFile(flagLog, flagDebug)
	if err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	defer logCloser.Close()

	var sounds assets.SoundBank = assets.NewBellBank(os.Stdout)
	if flagMute {
		sounds = assets.MuteBank{}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	name := flagName
	if name == "" {
		if u, userErr := user.Current(); userErr == nil {
			name = u.Username
		}
	}

	model := tui.NewModel(tui.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Names:      [2]string{name, flagName2},
		Storage:    storage,
		Art:        lib,
		Sounds:     sounds,
		Seed:       flagSeed,
		Logger:     logger,
		Width:      width,
		Height:     height,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
