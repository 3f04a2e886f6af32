package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-memotest/internal/assets"
	"go-memotest/internal/config"
	"go-memotest/internal/logging"
	"go-memotest/internal/scoring"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on.
	Address string
	// HostKeyPath is the host key file, generated when missing.
	// Empty means ~/.config/go-memotest/host_key.
	HostKeyPath string
	IdleTimeout time.Duration

	// Config is the starting board of every session. Sessions never
	// save their menu choices.
	Config  config.Config
	Storage scoring.RankingStorage
	Art     assets.Loader
	Seed    uint64
	// Bell rings the terminal bell of each player on match events.
	Bell bool
}

func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Config:      config.Default(),
	}
}

// SSHServer serves the game to every SSH client with a PTY. All sessions
// share one ranking.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	storage scoring.RankingStorage
	logger  *log.Logger
}

func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = logging.New(os.Stderr, false)
	}
	if cfg.Art == nil {
		lib, err := assets.DefaultLibrary()
		if err != nil {
			return nil, err
		}
		cfg.Art = lib
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}
	if cfg.Storage != nil {
		srv.storage = scoring.NewSyncStorage(cfg.Storage)
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir, err := scoring.DefaultDir()
		if err != nil {
			return nil, err
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler creates a model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	var sounds assets.SoundBank = assets.MuteBank{}
	if s.config.Bell {
		sounds = assets.NewBellBank(sess)
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	model := NewModel(Options{
		Config:  s.config.Config,
		Names:   [2]string{sess.User()},
		Storage: s.storage,
		Art:     s.config.Art,
		Sounds:  sounds,
		Seed:    seed,
		Logger:  s.logger.With("user", sess.User()),
		Width:   pty.Window.Width,
		Height:  pty.Window.Height,
	})
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", sess.RemoteAddr().String())
	}
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.Addr())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "err", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) Addr() string {
	return s.config.Address
}
