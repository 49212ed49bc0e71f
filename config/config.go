package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Content pipeline specifics
	Notion   NotionConfig
	Query    QueryConfig
	Pipeline PipelineConfig
	Export   ExportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	RefreshCron string // cron spec for feed refresh in serve mode; empty disables
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NotionConfig points the pipeline at one Notion workspace database.
type NotionConfig struct {
	BaseURL    string
	Token      string
	DatabaseID string
	CacheTTL   time.Duration
}

// QueryConfig selects which database pages become posts and in what order.
type QueryConfig struct {
	StatusField   string
	StatusValue   string
	SortField     string
	SortDirection string
}

type PipelineConfig struct {
	Workers int
}

type ExportConfig struct {
	Dir        string
	WriteIndex bool
}

// Load loads configuration using Viper. An explicit cfgFile wins; otherwise
// config.yaml is searched in ./config, ., /etc/app/ and may be absent.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RefreshCron = viper.GetString("http_server.refresh_cron")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notion workspace
	cfg.Notion.BaseURL = viper.GetString("notion.base_url")
	cfg.Notion.Token = viper.GetString("notion.token")
	cfg.Notion.DatabaseID = viper.GetString("notion.database_id")
	cfg.Notion.CacheTTL = viper.GetDuration("notion.cache_ttl")
	if token := viper.GetString("notion_token"); token != "" {
		cfg.Notion.Token = token
	}
	if databaseID := viper.GetString("notion_database_id"); databaseID != "" {
		cfg.Notion.DatabaseID = databaseID
	}

	// Feed query
	cfg.Query.StatusField = viper.GetString("query.status_field")
	cfg.Query.StatusValue = viper.GetString("query.status_value")
	cfg.Query.SortField = viper.GetString("query.sort_field")
	cfg.Query.SortDirection = viper.GetString("query.sort_direction")

	// Pipeline & export
	cfg.Pipeline.Workers = viper.GetInt("pipeline.workers")
	cfg.Export.Dir = viper.GetString("export.dir")
	cfg.Export.WriteIndex = viper.GetBool("export.write_index")

	return cfg, nil
}

// ValidateNotion reports whether the config can reach the Notion API.
// Commands that talk to Notion call it up front; version and help do not.
func (c *Config) ValidateNotion() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("notion token is required (set notion.token or NOTION_TOKEN)")
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("notion database id is required (set notion.database_id or NOTION_DATABASE_ID)")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.refresh_cron", "@hourly")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("notion.base_url", "https://api.notion.com")
	viper.SetDefault("notion.cache_ttl", "24h")

	viper.SetDefault("query.status_field", "Status")
	viper.SetDefault("query.status_value", "Published")
	viper.SetDefault("query.sort_field", "Published")
	viper.SetDefault("query.sort_direction", "ascending")

	viper.SetDefault("pipeline.workers", 4)

	viper.SetDefault("export.dir", "content/posts")
	viper.SetDefault("export.write_index", true)
}
