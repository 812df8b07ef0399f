package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"news_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"news_ingest" description:"Database name"`

	// Pipeline configuration
	SourcesFile    string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file with the feed source registry (built-in registry when empty)"`
	ClassifierURL  string `long:"classifier-url" env:"CLASSIFIER_URL" default:"https://zicosulatn-arabic-news-api.hf.space/api/predict" description:"HTTP classifier endpoint"`
	ModelPath      string `long:"model-path" env:"MODEL_PATH" description:"Local classifier model artifact (JSON); enables the local backend together with --vectorizer-path"`
	VectorizerPath string `long:"vectorizer-path" env:"VECTORIZER_PATH" description:"Local vectorizer artifact (JSON)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (NabaAI Bot)" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses configuration from command-line flags and environment
// variables. It returns (nil, nil) when help output was requested.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:         raw.DBHost,
		DBPort:         raw.DBPort,
		DBUser:         raw.DBUser,
		DBPassword:     raw.DBPassword,
		DBName:         raw.DBName,
		SourcesFile:    raw.SourcesFile,
		ClassifierURL:  raw.ClassifierURL,
		ModelPath:      raw.ModelPath,
		VectorizerPath: raw.VectorizerPath,
		UserAgent:      raw.UserAgent,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	return cfg, nil
}
