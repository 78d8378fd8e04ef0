package cmd

import (
	adaptercatalog "glimpse/internal/adapters/catalog"
	adapterstorage "glimpse/internal/adapters/storage"
	"glimpse/internal/config"
	"glimpse/internal/ports"
)

// Container holds shared dependencies for commands. The sink is opened
// lazily: the serve command never uses the container's connection (every
// SSH session opens its own), and the catalog command only needs one for
// the manifest strategy.
type Container struct {
	DBPath string

	sink *adapterstorage.SQLiteSink
}

// NewContainer creates a new Container for the given database path
func NewContainer(dbPath string) *Container {
	return &Container{DBPath: dbPath}
}

// Sink returns the shared SQLite sink, opening it on first use
func (c *Container) Sink() (*adapterstorage.SQLiteSink, error) {
	if c.sink == nil {
		sink, err := adapterstorage.NewSQLiteSink(c.DBPath)
		if err != nil {
			return nil, err
		}
		c.sink = sink
	}
	return c.sink, nil
}

// NewCatalog builds the media catalog for the configured strategy
func (c *Container) NewCatalog(cfg config.StudyConfig) (ports.MediaCatalog, error) {
	if cfg.CatalogSource == "manifest" {
		return c.Sink()
	}
	return adaptercatalog.NewDirCatalog(cfg.MediaDir), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.sink != nil {
		return c.sink.Close()
	}
	return nil
}
