package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	prospectsCSVEnv  = "PROSPECTS_CSV"
	marketDataCSVEnv = "MARKET_DATA_CSV"
	outputDirEnv     = "OUTPUT_DIR"
	portEnv          = "PORT"
	llmModelEnv      = "LLM_MODEL"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Files struct {
		ProspectsCSV  string `yaml:"prospects_csv"`
		MarketDataCSV string `yaml:"market_data_csv"`
		OutputDir     string `yaml:"output_dir"`
	} `yaml:"files"`

	LLM struct {
		Model             string  `yaml:"model"`
		MaxTokens         int     `yaml:"max_tokens"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	} `yaml:"llm"`

	Notify struct {
		Enabled  bool   `yaml:"enabled"`
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
		Username string `yaml:"username"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"notify"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Env vars win over the config file so a webhook host can point the engine at
// different CSVs without editing yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(prospectsCSVEnv); v != "" {
		c.Files.ProspectsCSV = v
	}
	if v := os.Getenv(marketDataCSVEnv); v != "" {
		c.Files.MarketDataCSV = v
	}
	if v := os.Getenv(outputDirEnv); v != "" {
		c.Files.OutputDir = v
	}
	if v := os.Getenv(portEnv); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if v := os.Getenv(llmModelEnv); v != "" {
		c.LLM.Model = v
	}
}

func Default() Config {
	var cfg Config
	cfg.App.Port = 5000
	cfg.App.DataDir = "."
	cfg.Files.ProspectsCSV = "./prospects_sample.csv"
	cfg.Files.MarketDataCSV = "./market_data_sample.csv"
	cfg.Files.OutputDir = "./generated_reports"
	cfg.LLM.Model = "gemini-2.5-flash"
	cfg.LLM.MaxTokens = 4000
	cfg.LLM.RequestsPerSecond = 0.5
	cfg.Notify.SMTPPort = 587
	return cfg
}
