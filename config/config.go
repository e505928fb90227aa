package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the assistant needs at runtime. The API key and
// base URL are passed through to the model client as opaque strings and are
// never parsed or validated here.
type Config struct {
	ProjectDir string `json:"project_dir"`
	DataDir    string `json:"data_dir"`

	LLMProvider string `json:"llm_provider"`
	Model       string `json:"model"`
	APIKey      string `json:"api_key"`
	BaseURL     string `json:"base_url"`
	MaxTokens   int    `json:"max_tokens"`

	// MockMode answers every query from the built-in tool stubs without
	// calling a model. It is forced on when no API key is configured.
	MockMode bool `json:"mock_mode"`

	HTTPAddr     string `json:"http_addr"`
	DBPath       string `json:"db_path"`
	HistoryLimit int    `json:"history_limit"`
	Debug        bool   `json:"debug"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()
	cfg := DefaultConfigWithRoot(currentDir)

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()
	return cfg
}

func DefaultConfigWithRoot(root string) *Config {
	return &Config{
		ProjectDir: root,
		DataDir:    filepath.Join(root, "data"),

		LLMProvider: "deepseek",
		Model:       "deepseek-chat",
		BaseURL:     "",
		MaxTokens:   2000,

		MockMode: true,

		HTTPAddr:     ":8080",
		DBPath:       "",
		HistoryLimit: 20,
		Debug:        false,
	}
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}

	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("FINAGENT_MODEL"); val != "" {
		c.Model = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.APIKey = val
	}
	if val := os.Getenv("FINAGENT_API_KEY"); val != "" {
		c.APIKey = val
	}
	if val := os.Getenv("OPENAI_BASE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("FINAGENT_BASE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("FINAGENT_MAX_TOKENS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxTokens = v
		}
	}

	if val := os.Getenv("FINAGENT_MOCK"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.MockMode = enabled
		}
	}

	if val := os.Getenv("FINAGENT_HTTP_ADDR"); val != "" {
		c.HTTPAddr = val
	}
	if val := os.Getenv("FINAGENT_DB_PATH"); val != "" {
		c.DBPath = val
	}
	if val := os.Getenv("FINAGENT_HISTORY_LIMIT"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.HistoryLimit = v
		}
	}
	if val := os.Getenv("FINAGENT_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

// LLMEnabled reports whether the model-backed runtime can be used.
func (c *Config) LLMEnabled() bool {
	return !c.MockMode && strings.TrimSpace(c.APIKey) != ""
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLMProvider) == "" {
		return fmt.Errorf("llm_provider is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative")
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{c.ProjectDir, c.DataDir}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}
