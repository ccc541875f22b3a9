package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"recruitin-engine/internal/analytics"
	"recruitin-engine/internal/config"
	"recruitin-engine/internal/csvdata"
	"recruitin-engine/internal/events"
	"recruitin-engine/internal/llm"
	"recruitin-engine/internal/notify"
	"recruitin-engine/internal/report"
	"recruitin-engine/internal/secrets"
	"recruitin-engine/internal/store"
)

const dataDirEnv = "RECRUITIN_DATA_DIR"

// app holds everything a command needs, constructed once per process.
type app struct {
	cfg       config.Config
	dataDir   string
	source    *csvdata.Source
	client    *llm.Client
	generator *report.Generator
	history   *store.DB
	hub       *events.Hub
}

// bootstrap loads config, resolves the API key (fatal when absent) and wires
// the generator. Everything downstream receives dependencies explicitly.
func bootstrap(ctx context.Context) (*app, error) {
	dataDir := os.Getenv(dataDirEnv)
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	if err := setupLogging(dataDir); err != nil {
		return nil, err
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return nil, fmt.Errorf("config bootstrap failed: %w", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, warn := range validation.Warnings {
		log.Printf("level=warn msg=\"config\" warn=%q", warn)
	}
	if !validation.OK() {
		return nil, fmt.Errorf("invalid config: %v", validation.Errors)
	}

	apiKey, err := secrets.APIKey()
	if err != nil {
		// Configuration error class: fatal before any work happens.
		return nil, err
	}

	client, err := llm.New(ctx, llm.Options{
		APIKey:            apiKey,
		Model:             cfg.LLM.Model,
		MaxTokens:         cfg.LLM.MaxTokens,
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Files.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	history, err := store.Open(filepath.Join(dataDir, "recruitin.db"))
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(history.Pool); err != nil {
		_ = history.Close()
		return nil, err
	}

	hub := events.NewHub()

	var notifier report.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewMailer(notify.EmailConfig{
			SMTPHost: cfg.Notify.SMTPHost,
			SMTPPort: cfg.Notify.SMTPPort,
			Username: cfg.Notify.Username,
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     cfg.Notify.From,
			To:       cfg.Notify.To,
			Enabled:  true,
		})
	}

	source := csvdata.New(cfg.Files.ProspectsCSV, cfg.Files.MarketDataCSV)

	gen := &report.Generator{
		Source:    source,
		LLM:       client,
		Analytics: analytics.NewWriter(filepath.Join(cfg.Files.OutputDir, "report_analytics.csv")),
		History:   history,
		Hub:       hub,
		Notify:    notifier,
		OutputDir: cfg.Files.OutputDir,
	}

	log.Printf("level=info msg=\"configuration validated\" data_dir=%s output_dir=%s model=%s",
		dataDir, cfg.Files.OutputDir, cfg.LLM.Model)

	return &app{
		cfg:       cfg,
		dataDir:   dataDir,
		source:    source,
		client:    client,
		generator: gen,
		history:   history,
		hub:       hub,
	}, nil
}

func (a *app) Close() {
	if a.history != nil {
		_ = a.history.Close()
	}
}

// setupLogging mirrors everything to report_generator.log next to the data,
// keeping stdout readable for webhook platform logs.
func setupLogging(dataDir string) error {
	f, err := os.OpenFile(filepath.Join(dataDir, "report_generator.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}
