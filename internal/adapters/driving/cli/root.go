// Package cli wires the Minuta commands: it loads the synced corpus,
// builds the in-memory catalog and indexes, and hands the services to
// the individual cobra commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/config/file"
	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/storage/disk"
	"github.com/helicon-labs/minuta-cli/internal/adapters/driven/storage/memory"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driven"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
	"github.com/helicon-labs/minuta-cli/internal/core/services"
	"github.com/helicon-labs/minuta-cli/internal/daterange"
	"github.com/helicon-labs/minuta-cli/internal/enrichment"
	"github.com/helicon-labs/minuta-cli/internal/logger"
	"github.com/helicon-labs/minuta-cli/internal/syncdir"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string

	configStore     driven.ConfigStore
	searchService   driving.SearchService
	documentService driving.DocumentService
	refreshService  driving.RefreshService
	cachePath       string
)

var rootCmd = &cobra.Command{
	Use:   "minuta",
	Short: "Search your locally synced meeting documents",
	Long: `Minuta indexes the meeting documents synced to your machine and
answers multi-dimensional queries over them: by attendee, date range,
workspace, folder, and content. Everything runs offline against the
local sync directory; no network access happens during a query.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.minuta)")
}

// initApp builds the full service graph before any command runs. The
// index lives only for the process lifetime and is rebuilt from disk
// here on every invocation.
func initApp(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	// Version and help need no corpus.
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	// Already wired (tests inject their own services).
	if searchService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	syncDir := store.GetString(file.KeySyncDir)
	if syncDir == "" {
		syncDir = filepath.Join(defaultBase(), "sync")
	}
	cachePath = store.GetString(file.KeyCachePath)
	if cachePath == "" {
		cachePath = filepath.Join(defaultBase(), "cache.json")
	}

	source := enrichment.NewSource(cachePath)
	loader := syncdir.NewLoader(syncDir, source, store.GetInt(file.KeyLoadConcurrency))

	docs, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("initializing document set: %w", err)
	}

	catalog := memory.NewCatalog(docs)
	ttl := time.Duration(store.GetInt(file.KeyContentCacheTTL)) * time.Second
	content := disk.NewContentStore(syncDir, ttl)
	resolver := daterange.NewResolver()

	searchService = services.NewSearchService(catalog, content, resolver)
	documentService = services.NewDocumentService(catalog, content)
	refreshService = services.NewRefreshService(catalog, source)

	return nil
}

func defaultBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".minuta")
}
