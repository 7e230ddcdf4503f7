package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BACKEND_FILE     = "file"
	BACKEND_VALKEY   = "valkey"
	BACKEND_DYNAMODB = "dynamodb"
)

type Settings struct {
	AppEnv   string
	LogLevel string

	StorageBackend string
	StorageDir     string

	ValkeyAddress      string
	ValkeyPassword     string
	ValkeyTLS          bool
	ValkeyPromptPrefix string

	AWSRegion    string
	AWSEndpoint  string
	PromptsTable string

	KafkaBroker        string
	KafkaAnalysisTopic string

	EmojiSeed int64
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// Load reads Settings from the environment. Call LoadEnv first to pull in
// the .env file for the current APP_ENV.
func Load() (Settings, error) {
	s := Settings{
		AppEnv:             getEnv("APP_ENV", "dev"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		StorageBackend:     strings.ToLower(getEnv("STORAGE_BACKEND", BACKEND_FILE)),
		StorageDir:         getEnv("STORAGE_DIR", "."),
		ValkeyAddress:      getEnv("VALKEY_INIT_ADDRESS", "localhost:6379"),
		ValkeyPassword:     getEnv("VALKEY_PASSWORD", ""),
		ValkeyTLS:          getEnv("VALKEY_TLS", "false") == "true",
		ValkeyPromptPrefix: getEnv("VALKEY_PROMPT_PREFIX", "prompts:"),
		AWSRegion:          getEnv("AWS_REGION", "us-west-2"),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		PromptsTable:       getEnv("DYNAMODB_PROMPTS_TABLE", "Prompts"),
		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		KafkaAnalysisTopic: getEnv("KAFKA_ANALYSIS_TOPIC", "sentiment-analyses"),
	}

	seed := getEnv("EMOJI_SEED", "0")
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return Settings{}, fmt.Errorf("[Config] invalid EMOJI_SEED %q: %w", seed, err)
	}
	s.EmojiSeed = n

	switch s.StorageBackend {
	case BACKEND_FILE, BACKEND_VALKEY, BACKEND_DYNAMODB:
	default:
		return Settings{}, fmt.Errorf("[Config] unknown STORAGE_BACKEND %q", s.StorageBackend)
	}

	return s, nil
}

func (s Settings) FeedEnabled() bool {
	return s.KafkaBroker != ""
}
