package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Show     ShowConfig   `yaml:"show"`
	Market   MarketConfig `yaml:"market"`
	LLM      LLMConfig    `yaml:"llm"`
	Rules    RulesConfig  `yaml:"rules"`
	Server   ServerConfig `yaml:"server"`
	Schedule string       `yaml:"schedule"`
}

type ShowConfig struct {
	Name     string `yaml:"name"`
	LeadHost string `yaml:"lead_host"`
	CoHost   string `yaml:"co_host"`
	// AlternateLead swaps the lead on Tuesdays and Thursdays so both hosts
	// get to open the show.
	AlternateLead bool `yaml:"alternate_lead"`
}

// HostsFor returns the lead and co-host for a given air date.
func (s ShowConfig) HostsFor(day time.Weekday) (lead, co string) {
	if s.AlternateLead && (day == time.Tuesday || day == time.Thursday) {
		return s.CoHost, s.LeadHost
	}
	return s.LeadHost, s.CoHost
}

type MarketConfig struct {
	Symbols  []string `yaml:"symbols"`
	TopCount int      `yaml:"top_count"`
	// NewsPerSymbol caps the headlines fetched for each mover.
	NewsPerSymbol int `yaml:"news_per_symbol"`
}

type LLMConfig struct {
	Provider           string `yaml:"provider"` // openai | anthropic
	FoundationalPrompt string `yaml:"foundational_prompt"`
}

type RulesConfig struct {
	// Document is the producer-editable markdown file with numeric rule
	// overrides. Optional; defaults apply when absent.
	Document string `yaml:"document"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Load reads the YAML config file named by CONFIG_FILE (default config.yaml)
// after loading .env. A missing config file is not an error: the built-in
// defaults describe a fully working show.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Show.Name == "" {
		c.Show.Name = "Market Voices"
	}
	if c.Show.LeadHost == "" {
		c.Show.LeadHost = "Suzanne"
	}
	if c.Show.CoHost == "" {
		c.Show.CoHost = "Marcus"
	}
	if c.Market.TopCount == 0 {
		c.Market.TopCount = 5
	}
	if c.Market.NewsPerSymbol == 0 {
		c.Market.NewsPerSymbol = 3
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Schedule == "" {
		// Weekday evenings after market close, US Eastern assumed at deploy.
		c.Schedule = "0 30 16 * * MON-FRI"
	}
}
