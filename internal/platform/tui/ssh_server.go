package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/hexslide/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the catalogue server.
type SSHServerConfig struct {
	Address     string
	HostKeyPath string // empty means ~/.hexslide/host_key
	DBPath      string
	IdleTimeout time.Duration
	Logger      *log.Logger
}

func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.hexslide/levels.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the level catalogue and replay viewer over SSH.
// Every session browses the same store.
type SSHServer struct {
	addr   string
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer opens the catalogue and prepares the listener. The host key
// is generated on first use if the file does not exist yet.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hexslide-ssh",
		})
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open level catalogue: %w", err)
	}

	srv := &SSHServer{addr: cfg.Address, store: store, logger: logger}
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.catalogueSession),
			srv.logSessions,
		),
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	return srv, nil
}

// resolveHostKeyPath fills in the default key location and makes sure its
// directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		path = filepath.Join(home, ".hexslide", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("prepare host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) catalogueSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without pty", "user", sess.User())
		return nil, nil
	}
	m := NewCatalogueModel(s.store, pty.Window.Width, pty.Window.Height, DefaultTheme())
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session open", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("session closed", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled or the listener fails,
// then shuts the server down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.addr)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.store.Close()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions and closes the catalogue.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

func (s *SSHServer) Addr() string {
	return s.addr
}
