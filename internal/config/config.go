package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KevinKickass/BlinkenCore/internal/blinkenbus"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Bus     BusConfig     `mapstructure:"bus"`
	Service ServiceConfig `mapstructure:"service"`
}

type ServerConfig struct {
	GRPCPort        int           `mapstructure:"grpc_port"`
	HTTPPort        int           `mapstructure:"http_port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type BusConfig struct {
	// Device is the register file, or "memory" for a loopback bus.
	Device string `mapstructure:"device"`
}

// Memory reports whether the in-memory loopback bus is configured.
func (b BusConfig) Memory() bool {
	return b.Device == MemoryDevice
}

type ServiceConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

const MemoryDevice = "memory"

// Load reads the server configuration. An empty path uses defaults and
// environment variables only.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults setzen
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("bus.device", blinkenbus.DefaultDevice)
	v.SetDefault("service.poll_interval", "2ms")

	// BLINKEN_SERVER_GRPC_PORT etc.
	v.SetEnvPrefix("BLINKEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
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

func (c *Config) Validate() error {
	var errs []error
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid grpc_port %d", c.Server.GRPCPort))
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid http_port %d", c.Server.HTTPPort))
	}
	if c.Service.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("invalid poll_interval %v", c.Service.PollInterval))
	}
	if c.Bus.Device == "" {
		errs = append(errs, errors.New("missing bus device"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
