package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the rate generator
type Config struct {
	AppName string        `mapstructure:"app_name"`
	Sheets  SheetsConfig  `mapstructure:"sheets"`
	Output  OutputConfig  `mapstructure:"output"`
	Horizon HorizonConfig `mapstructure:"horizon"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// SheetsConfig points at the published spreadsheet tabs
type SheetsConfig struct {
	SheetID        string `mapstructure:"sheet_id"`
	RoomsGID       string `mapstructure:"rooms_gid"`
	RulesGID       string `mapstructure:"rules_gid"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	XLSXPath       string `mapstructure:"xlsx_path"`
}

// OutputConfig holds generated file locations
type OutputConfig struct {
	Dir           string `mapstructure:"dir"`
	RoomTypesFile string `mapstructure:"room_types_file"`
	RatesFile     string `mapstructure:"rates_file"`
	JSONFile      string `mapstructure:"json_file"`
}

// HorizonConfig bounds the pricing horizon policy
type HorizonConfig struct {
	MinDays int `mapstructure:"min_days"`
}

// RedisConfig holds the optional sheet-fetch cache settings
type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	DB         int    `mapstructure:"db"`
	Password   string `mapstructure:"password"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// ServerConfig holds preview server configuration
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app_name", "rategen")
	viper.SetDefault("sheets.rooms_gid", "0")
	viper.SetDefault("sheets.timeout_seconds", 30)
	viper.SetDefault("output.dir", "data")
	viper.SetDefault("output.room_types_file", "room_types.js")
	viper.SetDefault("output.rates_file", "rates.js")
	viper.SetDefault("output.json_file", "rates.json")
	viper.SetDefault("horizon.min_days", 365)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl_minutes", 10)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sheets.SheetID == "" && c.Sheets.XLSXPath == "" {
		return fmt.Errorf("either sheets.sheet_id or sheets.xlsx_path is required")
	}
	if c.Sheets.SheetID != "" && c.Sheets.RulesGID == "" {
		return fmt.Errorf("sheets.rules_gid is required when sheets.sheet_id is set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Horizon.MinDays < 0 {
		return fmt.Errorf("horizon.min_days must not be negative")
	}
	return nil
}
