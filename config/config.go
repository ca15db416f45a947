package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	WatsonxAPIKey     string        `mapstructure:"WATSONX_API_KEY"`
	WatsonxURL        string        `mapstructure:"WATSONX_URL"`
	WatsonxProjectID  string        `mapstructure:"WATSONX_PROJECT_ID"`
	WatsonxModelID    string        `mapstructure:"WATSONX_MODEL_ID"`
	IAMTokenURL       string        `mapstructure:"IAM_TOKEN_URL"`
	LLMRequestTimeout time.Duration `mapstructure:"LLM_REQUEST_TIMEOUT"`
	WebPort           int           `mapstructure:"WEB_PORT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	AnswerCacheSize   int           `mapstructure:"ANSWER_CACHE_SIZE"`
	ChunkSentences    int           `mapstructure:"CHUNK_SENTENCES"`
	ChunkOverlap      int           `mapstructure:"CHUNK_OVERLAP"`
	MaxUploadBytes    int64         `mapstructure:"MAX_UPLOAD_BYTES"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values. The Watsonx placeholders intentionally fail remote
	// auth so an unconfigured deployment degrades to local-only answers.
	viper.SetDefault("WATSONX_API_KEY", "your-api-key-here")
	viper.SetDefault("WATSONX_URL", "https://us-south.ml.cloud.ibm.com")
	viper.SetDefault("WATSONX_PROJECT_ID", "your-project-id-here")
	viper.SetDefault("WATSONX_MODEL_ID", "ibm-mistralai/mixtral-8x7b-instruct-v01")
	viper.SetDefault("IAM_TOKEN_URL", "https://iam.cloud.ibm.com/identity/token")
	viper.SetDefault("LLM_REQUEST_TIMEOUT", 120)
	viper.SetDefault("WEB_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ANSWER_CACHE_SIZE", 128)
	viper.SetDefault("CHUNK_SENTENCES", 8)
	viper.SetDefault("CHUNK_OVERLAP", 2)
	viper.SetDefault("MAX_UPLOAD_BYTES", 32<<20)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds to proper time.Duration
	config.LLMRequestTimeout = config.LLMRequestTimeout * time.Second

	// Normalize chunking parameters so the chunker always makes progress.
	if config.ChunkSentences < 1 {
		config.ChunkSentences = 1
	}
	if config.ChunkOverlap < 0 || config.ChunkOverlap >= config.ChunkSentences {
		config.ChunkOverlap = 0
	}

	return &config
}
