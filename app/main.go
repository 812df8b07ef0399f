package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nabaai/news-ingest/app/article"
	"github.com/nabaai/news-ingest/app/cfg"
	"github.com/nabaai/news-ingest/app/classifier"
	"github.com/nabaai/news-ingest/app/config"
	"github.com/nabaai/news-ingest/app/database"
	"github.com/nabaai/news-ingest/app/feed"
	"github.com/nabaai/news-ingest/app/pipeline"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)
	slog.Info("Starting news ingestion run", "version", appCfg.Version)

	sources, err := config.Load(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load source registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded source registry", "sources", len(sources))

	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	cls, err := buildClassifier(appCfg)
	if err != nil {
		slog.Error("Failed to build classifier", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(pipeline.Deps{
		Sources:    sources,
		Feeds:      feed.NewParser(appCfg.UserAgent),
		Scraper:    article.NewScraper(appCfg.UserAgent),
		Classifier: cls,
		SourceRepo: database.NewSourceRepository(db),
		NewsRepo:   database.NewNewsRepository(db),
	})

	stats, err := p.Run(context.Background())
	if err != nil {
		slog.Error("Run aborted", "error", err)
		os.Exit(1)
	}

	slog.Info("Run complete",
		"feeds", stats.Feeds,
		"feed_errors", stats.FeedErrors,
		"entries", stats.Entries,
		"skipped_missing", stats.SkippedMissing,
		"skipped_duplicate", stats.SkippedDuplicate,
		"skipped_thin", stats.SkippedThin,
		"store_errors", stats.StoreErrors,
		"published", stats.Published,
		"pending", stats.Pending,
		"added", stats.Added)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func buildClassifier(appCfg *cfg.Cfg) (classifier.Classifier, error) {
	if appCfg.UseLocalModel() {
		slog.Info("Using local classifier", "model", appCfg.ModelPath, "vectorizer", appCfg.VectorizerPath)
		return classifier.NewLocalClassifier(appCfg.VectorizerPath, appCfg.ModelPath)
	}

	slog.Info("Using HTTP classifier", "endpoint", appCfg.ClassifierURL)
	return classifier.NewHTTPClassifier(appCfg.ClassifierURL), nil
}
