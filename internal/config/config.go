package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Driver       string `mapstructure:"driver"` // mysql or postgres
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// GeneratorConfig sizes the dataset. Seed 0 draws a fresh dataset on every start.
type GeneratorConfig struct {
	Seed   int64        `mapstructure:"seed"`
	Counts synth.Counts `mapstructure:"counts"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// StorageConfig locates the local key/value file standing in for browser storage
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	Latency time.Duration `mapstructure:"latency"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	counts := synth.DefaultCounts()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.dsn", "root:@tcp(127.0.0.1:4000)/hubdispo?parseTime=true")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.counts.shipments", counts.Shipments)
	v.SetDefault("generator.counts.groups", counts.Groups)
	v.SetDefault("generator.counts.alerts", counts.Alerts)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "hubdispo.fleet")
	v.SetDefault("storage.dir", ".hubdispo")
	v.SetDefault("auth.latency", 800*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom reads the given file, or searches the default locations when
// path is empty. A missing config file is not an error, defaults apply.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./deploy/")
		v.AddConfigPath("./")
		v.AddConfigPath("$HOME/.hubdispo/")
		v.AddConfigPath("/etc/hubdispo/")
	}

	// HUBDISPO_SERVER_ADDR overrides server.addr
	v.SetEnvPrefix("HUBDISPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values viper cannot type-check
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported db driver: %s", c.DB.Driver)
	}

	counts := c.Generator.Counts
	if counts.Shipments < 0 || counts.Groups < 0 || counts.Alerts < 0 {
		return fmt.Errorf("generator counts must not be negative: %+v", counts)
	}

	return nil
}
