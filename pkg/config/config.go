package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Top-level config struct
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Sink     SinkConfig     `yaml:"sink"`
	Sheets   SheetsConfig   `yaml:"sheets"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// TelegramConfig holds the bot token and the operator chat.
// AdminChatID is where new submissions and error reports are sent.
type TelegramConfig struct {
	Token       string `yaml:"token"`
	AdminChatID int64  `yaml:"admin_chat_id"`
}

// SinkConfig selects the row sink backend and its call timeout.
// TimeoutSeconds of 0 means no artificial timeout on the sink call.
type SinkConfig struct {
	Backend        string `yaml:"backend"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SheetsConfig define the configs needed to append to a Google Sheet
type SheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	WriteRange      string `yaml:"write_range"`
}

// DatabaseConfig define the configs needed to connect to the DB
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"ssl_mode"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Sink backends
const (
	SinkSheets   = "sheets"
	SinkPostgres = "postgres"
)

// Load reads the YAML config file, applies BOT_TOKEN / ADMIN_CHAT_ID
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	var cfg Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}

	err = yaml.Unmarshal(yamlFile, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if token := os.Getenv("BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("ADMIN_CHAT_ID must be an integer, got %q: %w", raw, err)
		}
		cfg.Telegram.AdminChatID = id
	}

	if cfg.Sink.Backend == "" {
		cfg.Sink.Backend = SinkSheets
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (telegram.token or BOT_TOKEN)")
	}
	if c.Telegram.AdminChatID == 0 {
		return fmt.Errorf("operator chat id is required (telegram.admin_chat_id or ADMIN_CHAT_ID)")
	}
	if c.Sink.Backend != SinkSheets && c.Sink.Backend != SinkPostgres {
		return fmt.Errorf("unknown sink backend %q", c.Sink.Backend)
	}
	if c.Sink.TimeoutSeconds < 0 {
		return fmt.Errorf("sink.timeout_seconds must not be negative")
	}
	return nil
}
