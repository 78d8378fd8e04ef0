package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"glimpse/internal/config"
	"glimpse/internal/logging"
)

// Server serves the survey over SSH. Every connection gets a fresh,
// exclusively-owned session writing to the shared study database.
type Server struct {
	authorizedKeys  string // optional; empty allows any participant in
	cfg             config.StudyConfig
	dbPath          string
	errorClearDelay time.Duration
	host            string
	port            string
	wishServer      *ssh.Server
}

// Options configures the SSH server
type Options struct {
	AuthorizedKeys  string // path to an authorized_keys file; empty = open access
	DBPath          string
	ErrorClearDelay time.Duration
	Host            string
	Port            string
	Study           config.StudyConfig
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	s := &Server{
		authorizedKeys:  opts.AuthorizedKeys,
		cfg:             opts.Study,
		dbPath:          opts.DBPath,
		errorClearDelay: opts.ErrorClearDelay,
		host:            opts.Host,
		port:            opts.Port,
	}

	// Ensure SSH directory exists
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	sshDir := filepath.Join(homeDir, ".glimpse", "ssh")
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	hostKeyPath := filepath.Join(sshDir, "id_ed25519")

	serverOptions := []ssh.Option{
		wish.WithAddress(fmt.Sprintf("%s:%s", s.host, s.port)),
		wish.WithHostKeyPath(hostKeyPath),
		// Middleware executes in reverse order (last to first)
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	}

	// Participants connect anonymously by default; an authorized_keys file
	// restricts the server to known operators
	if s.authorizedKeys != "" {
		serverOptions = append(serverOptions,
			wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
				fingerprint := getKeyFingerprint(key)
				authorized := isKeyAuthorized(key, s.authorizedKeys)

				if authorized {
					logging.Logger.Info("SSH key authenticated",
						"user", ctx.User(),
						"fingerprint", fingerprint,
						"key_type", key.Type())
				} else {
					logging.Logger.Warn("Unauthorized SSH key",
						"user", ctx.User(),
						"fingerprint", fingerprint,
						"key_type", key.Type())
				}
				return authorized
			}),
		)
	}

	wishServer, err := wish.NewServer(serverOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start starts the SSH server and blocks until shutdown
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH server",
		"address", fmt.Sprintf("%s:%s", s.host, s.port),
		"study_id", s.cfg.StudyID,
		"mode", string(s.cfg.Mode))
	fmt.Printf("Survey available over SSH on %s:%s\n", s.host, s.port)

	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil {
			logging.Logger.Error("SSH server error", "error", err)
		}
	}()

	<-done
	logging.Logger.Info("Shutting down SSH server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
