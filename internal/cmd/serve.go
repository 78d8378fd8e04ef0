package cmd

import (
	"time"

	"glimpse/internal/server"
)

// ServeCmd serves the survey to remote participants over SSH
type ServeCmd struct {
	StudyFlags

	AuthorizedKeys  string `help:"Path to an authorized_keys file; when set, only listed keys may connect" type:"path"`
	ErrorClearDelay int    `help:"Seconds to wait before clearing error messages" default:"10"`
	Host            string `help:"Host address to bind the SSH server to" default:"0.0.0.0"`
	Port            string `help:"Port for the SSH server" default:"2223"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	cfg, err := s.studyConfig(cli.settings)
	if err != nil {
		return err
	}

	errorClearDelay := s.ErrorClearDelay
	if s.ErrorClearDelay == 10 && cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeys:  s.AuthorizedKeys,
		DBPath:          cli.DB,
		ErrorClearDelay: time.Duration(errorClearDelay) * time.Second,
		Host:            s.Host,
		Port:            s.Port,
		Study:           cfg,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
