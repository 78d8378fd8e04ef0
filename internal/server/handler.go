package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	adaptercatalog "glimpse/internal/adapters/catalog"
	adapterstorage "glimpse/internal/adapters/storage"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
	"glimpse/internal/services"
	"glimpse/internal/ui"
)

// sessionModel wraps ui.Model to close the per-connection store on quit
type sessionModel struct {
	*ui.Model
	sessionID string
	sink      *adapterstorage.SQLiteSink
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.sink.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a fresh survey session for each SSH connection
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Shared database, one connection per session; WAL keeps concurrent
	// appends independently safe
	sink, err := adapterstorage.NewSQLiteSink(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	var catalog ports.MediaCatalog
	if s.cfg.CatalogSource == "manifest" {
		catalog = sink
	} else {
		catalog = adaptercatalog.NewDirCatalog(s.cfg.MediaDir)
	}

	recorder := services.NewRecorder(sink, sink)
	study := services.NewStudyService(s.cfg, catalog, recorder)

	wrappedModel := &sessionModel{
		Model:     ui.NewModel(study, s.errorClearDelay),
		sessionID: sessionID,
		sink:      sink,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
