package cmd

import (
	"context"
	"fmt"

	adaptercatalog "glimpse/internal/adapters/catalog"
	"glimpse/internal/domain"
	"glimpse/internal/logging"
)

// CatalogCmd lists the stimuli available for a presentation mode
type CatalogCmd struct {
	StudyFlags

	SyncManifest bool `help:"Scan the media directory and record its entries in the manifest table"`
}

// Run executes the catalog command
func (c *CatalogCmd) Run(cli *CLI) error {
	cfg, err := c.studyConfig(cli.settings)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if c.SyncManifest {
		if err := c.syncManifest(ctx, cli, cfg.MediaDir); err != nil {
			return err
		}
	}

	catalog, err := cli.Container.NewCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	items, err := catalog.List(ctx, cfg.Mode.Kind())
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	if len(items) == 0 {
		fmt.Printf("No %s stimuli found (source: %s)\n", cfg.Mode.Kind(), cfg.CatalogSource)
		return nil
	}

	fmt.Printf("%d %s stimuli (source: %s):\n", len(items), cfg.Mode.Kind(), cfg.CatalogSource)
	for i, item := range items {
		fmt.Printf("  %3d. %-40s %s\n", i+1, item.Name, item.OutcomeLabel)
	}
	return nil
}

// syncManifest scans the media directory and upserts every discovered
// stimulus into the manifest table
func (c *CatalogCmd) syncManifest(ctx context.Context, cli *CLI, mediaDir string) error {
	sink, err := cli.Container.Sink()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	dir := adaptercatalog.NewDirCatalog(mediaDir)

	var synced int
	for _, kind := range []domain.MediaKind{domain.KindImage, domain.KindVideo} {
		items, err := dir.List(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to scan media directory: %w", err)
		}
		for _, item := range items {
			if err := sink.UpsertManifestEntry(ctx, item); err != nil {
				return fmt.Errorf("failed to sync %s: %w", item.Name, err)
			}
			synced++
		}
	}

	logging.Logger.Info("Manifest synced", "media_dir", mediaDir, "entries", synced)
	fmt.Printf("Synced %d manifest entries from %s\n", synced, mediaDir)
	return nil
}
