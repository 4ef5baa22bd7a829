package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmark3273/sibur/internal/timegrid"
)

// Config is the application-wide configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
	Columns  ColumnsConfig  `mapstructure:"columns"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	CORS           CORSConfig `mapstructure:"cors"`
	MaxUploadBytes int64      `mapstructure:"max_upload_bytes"`
}

// CORSConfig lists the allowed cross-origin origins.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ColumnsConfig maps the engine's semantic field roles onto the upload's
// column labels. Defaults match the transport-request workbook this service
// was built for; deployments with different headers override them here.
type ColumnsConfig struct {
	Date          string `mapstructure:"date"`
	Start         string `mapstructure:"start"`
	End           string `mapstructure:"end"`
	RequestNumber string `mapstructure:"request_number"`
	PlateFinal    string `mapstructure:"plate_final"`
	PlateAssigned string `mapstructure:"plate_assigned"`
	NameFinal     string `mapstructure:"name_final"`
	NameAssigned  string `mapstructure:"name_assigned"`
	ClassFinal    string `mapstructure:"class_final"`
	ClassAssigned string `mapstructure:"class_assigned"`
}

// ColumnMap converts the configured roles into the engine's mapping.
func (c *ColumnsConfig) ColumnMap() timegrid.ColumnMap {
	return timegrid.ColumnMap{
		Date:          c.Date,
		Start:         c.Start,
		End:           c.End,
		RequestNumber: c.RequestNumber,
		PlateFinal:    c.PlateFinal,
		PlateAssigned: c.PlateAssigned,
		NameFinal:     c.NameFinal,
		NameAssigned:  c.NameAssigned,
		ClassFinal:    c.ClassFinal,
		ClassAssigned: c.ClassAssigned,
	}
}

// Load reads configuration from file and environment variables.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.max_upload_bytes", 16<<20)

	v.SetDefault("db.path", "data/app.sqlite3")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("columns.date", "Дата подачи")
	v.SetDefault("columns.start", "Время подачи")
	v.SetDefault("columns.end", "Время завершения")
	v.SetDefault("columns.request_number", "Номер заявки")
	v.SetDefault("columns.plate_final", "Гос номер итогового ТС")
	v.SetDefault("columns.plate_assigned", "Гос номер ТС")
	v.SetDefault("columns.name_final", "Итоговое ТС")
	v.SetDefault("columns.name_assigned", "ТС")
	v.SetDefault("columns.class_final", "Класс итогового ТС")
	v.SetDefault("columns.class_assigned", "Класс назначенного ТС")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("SIBUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file: defaults plus environment only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the critical settings.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config validation: server.port must be within 1-65535")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config validation: db.path must not be empty")
	}
	if c.Columns.Date == "" || c.Columns.Start == "" || c.Columns.End == "" {
		return fmt.Errorf("config validation: columns.date/start/end must not be empty")
	}
	if c.Columns.PlateFinal == "" && c.Columns.PlateAssigned == "" {
		return fmt.Errorf("config validation: at least one plate column must be set")
	}
	return nil
}
