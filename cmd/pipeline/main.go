package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/product-narrator/internal/config"
	"github.com/nguyentantai21042004/product-narrator/internal/extractor"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
	"github.com/nguyentantai21042004/product-narrator/internal/narrator"
	"github.com/nguyentantai21042004/product-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/product-narrator/internal/publisher"
	"github.com/nguyentantai21042004/product-narrator/internal/store"
	"github.com/nguyentantai21042004/product-narrator/internal/summarizer"
	"github.com/nguyentantai21042004/product-narrator/internal/watcher"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the yaml config file (optional)")
	watch := flag.Bool("watch", false, "after the run, regenerate whenever the product file changes")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	path := *configPath
	if path == defaultConfigPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	// Load configuration
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	ctx := logger.WithRunID(context.Background(), uuid.NewString())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p, st, err := build(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		os.Exit(1)
	}

	if _, err := p.Run(ctx); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	if err := watchStore(ctx, cancel, p, st, log); err != nil {
		log.Error(ctx, "Watcher error: %v", err)
		os.Exit(1)
	}
}

// build wires every stage from configuration
func build(ctx context.Context, cfg *config.Config, log logger.Logger) (pipeline.Pipeline, store.Store, error) {
	gen, err := summarizer.NewGenerator(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("summarizer: %w", err)
	}

	synth := narrator.NewElevenLabs(cfg.Narrator.APIKey, log,
		narrator.WithBaseURL(cfg.Narrator.BaseURL),
		narrator.WithVoice(cfg.Narrator.VoiceID),
		narrator.WithModelID(cfg.Narrator.ModelID),
		narrator.WithHTTPTimeout(cfg.NarratorTimeout()),
	)

	st := store.New(cfg.ProductsPath())

	deps := pipeline.Deps{
		Extractor:  extractor.New(cfg, log),
		Store:      st,
		Summarizer: summarizer.New(gen, cfg.Summarizer, log),
		Narrator:   narrator.New(synth, cfg.Paths.Audio, cfg.Narrator.Extension, log),
		Report:     summarizer.WriteReport,
		ReportPath: cfg.ReportPath(),
	}

	if cfg.Publish.Bucket != "" {
		pub, err := publisher.NewFromConfig(ctx, cfg.Publish, log)
		if err != nil {
			return nil, nil, fmt.Errorf("publisher: %w", err)
		}
		deps.Publisher = pub
	}

	return pipeline.New(deps, log), st, nil
}

// watchStore regenerates summaries and audio on every edit of the product file until a signal arrives
func watchStore(ctx context.Context, cancel context.CancelFunc, p pipeline.Pipeline, st store.Store, log logger.Logger) error {
	handler := func(ctx context.Context, filePath string) error {
		_, err := p.Regenerate(ctx)
		return err
	}

	w, err := watcher.New(st.Path(), handler, log, time.Second)
	if err != nil {
		return err
	}
	defer w.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for changes, press Ctrl+C to stop", st.Path())

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
