package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/corefs/ramfs/internal/logger"
	"github.com/corefs/ramfs/pkg/config"
	"github.com/corefs/ramfs/pkg/engine"
	"github.com/corefs/ramfs/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: "+config.GetDefaultConfigPath()+")")
	logLevel := flag.String("log-level", "", "Override log level (DEBUG, INFO, WARN, ERROR)")
	initConfig := flag.Bool("init-config", false, "Write a default config file and exit")
	flag.Parse()

	if *initConfig {
		if err := writeDefaultConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = strings.ToUpper(*logLevel)
	}

	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	logger.Info("ramfs starting: log level %s", cfg.Logging.Level)

	var engineMetrics metrics.EngineMetrics
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		engineMetrics = metrics.NewEngineMetrics()
		logger.Info("Metrics enabled on %s", cfg.Metrics.Listen)
	}

	eng, err := engine.New(engine.Config{
		Capacity:    cfg.Engine.Capacity,
		RootID:      engine.NodeID(cfg.Engine.RootID),
		RootMode:    cfg.Engine.RootMode,
		MaxNameLen:  cfg.Engine.MaxNameLen,
		MaxFileSize: cfg.Engine.MaxFileSize,
		Metrics:     engineMetrics,
	})
	if err != nil {
		logger.Error("Failed to create engine: %v", err)
		os.Exit(1)
	}
	defer eng.Destroy()

	logger.Info("Engine %s ready: capacity=%d root=%d", eng.Instance(), cfg.Engine.Capacity, eng.RootID())

	if cfg.Seed.Enabled {
		entries, err := config.ParseSeedEntries(&cfg.Seed)
		if err != nil {
			logger.Error("Invalid seed entries: %v", err)
			os.Exit(1)
		}
		if err := applySeed(eng, entries); err != nil {
			logger.Error("Failed to seed initial structure: %v", err)
			os.Exit(1)
		}
		logger.Info("Initial structure created: %d entries", len(entries))
	}

	logTree(eng, eng.RootID(), "/")

	stats := eng.Stats()
	logger.Info("Node table: %d live, %d free of %d", stats.LiveNodes, stats.FreeSlots, stats.Capacity)

	if !cfg.Metrics.Enabled {
		return
	}

	runMetricsServer(cfg.Metrics.Listen)
}

// writeDefaultConfig renders the default configuration to the given path,
// or the default config location when path is empty.
func writeDefaultConfig(path string) error {
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	data, err := config.DefaultYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Printf("Default config written to %s\n", path)
	return nil
}

// applySeed creates the configured initial tree. Entries are applied in
// order, so directories must be listed before their contents.
func applySeed(eng *engine.Engine, entries []config.SeedEntry) error {
	for _, entry := range entries {
		parent, err := resolveParent(eng, entry.Path)
		if err != nil {
			return fmt.Errorf("seed %s: %w", entry.Path, err)
		}
		name := path.Base(entry.Path)

		switch entry.Type {
		case "directory":
			mode := entry.Mode
			if mode == 0 {
				mode = 0o755
			}
			if _, err := eng.Create(parent, name, engine.NodeTypeDirectory, mode); err != nil {
				return fmt.Errorf("seed %s: %w", entry.Path, err)
			}

		case "file":
			mode := entry.Mode
			if mode == 0 {
				mode = 0o644
			}
			st, err := eng.Create(parent, name, engine.NodeTypeRegular, mode)
			if err != nil {
				return fmt.Errorf("seed %s: %w", entry.Path, err)
			}
			if entry.Content != "" {
				if _, err := eng.Write(st.ID, 0, []byte(entry.Content)); err != nil {
					return fmt.Errorf("seed %s: %w", entry.Path, err)
				}
			}
		}
	}

	return nil
}

// resolveParent walks the directory components of an absolute path and
// returns the identifier of the parent directory of its last component.
func resolveParent(eng *engine.Engine, p string) (engine.NodeID, error) {
	dir := eng.RootID()

	components := strings.Split(strings.Trim(path.Dir(p), "/"), "/")
	for _, component := range components {
		if component == "" {
			continue
		}
		st, err := eng.Lookup(dir, component)
		if err != nil {
			return 0, err
		}
		dir = st.ID
	}

	return dir, nil
}

// logTree logs the directory tree rooted at id, one line per entry.
func logTree(eng *engine.Engine, id engine.NodeID, prefix string) {
	entries, _, err := eng.ReadDir(id, 0, 0)
	if err != nil {
		logger.Warn("Failed to list %s: %v", prefix, err)
		return
	}

	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		full := path.Join(prefix, entry.Name)
		st, err := eng.Getattr(entry.ID)
		if err != nil {
			logger.Warn("Failed to stat %s: %v", full, err)
			continue
		}
		logger.Info("  %-9s %4d %6d  %s", st.Type, st.ID, st.Size, full)

		if entry.Type == engine.NodeTypeDirectory {
			logTree(eng, entry.ID, full)
		}
	}
}

// runMetricsServer serves /metrics until SIGINT/SIGTERM.
func runMetricsServer(listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:         listen,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Metrics server running on %s. Press Ctrl+C to stop.", listen)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping metrics server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Metrics server shutdown error: %v", err)
			os.Exit(1)
		}
		logger.Info("Stopped gracefully")

	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server error: %v", err)
			os.Exit(1)
		}
	}
}
