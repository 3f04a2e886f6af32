package main

import (
	"fmt"
	"os"
	"time"

	"go-memotest/internal/logging"
	"go-memotest/internal/tui"

	"github.com/spf13/cobra"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagBell        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server. Every connection gets its own match and all
players share the same ranking. The SSH user name is offered as the
player name.

Examples:
  memotest serve
  memotest serve --ssh :2222 --store sqlite

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the players' terminal bell on match events")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
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

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Config = cfg
	srvCfg.Storage = storage
	srvCfg.Art = lib
	srvCfg.Seed = flagSeed
	srvCfg.Bell = flagBell

	server, err := tui.NewSSHServer(srvCfg, logging.New(os.Stderr, flagDebug))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
