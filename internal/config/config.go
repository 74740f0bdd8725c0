package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string        `mapstructure:"env"`
	Server  ServerConfig  `mapstructure:"server"`
	Gateway GatewayConfig `mapstructure:"gateway"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeout int    `mapstructure:"write_timeout_seconds"`
	IdleTimeout  int    `mapstructure:"idle_timeout_seconds"`
}

// GatewayConfig is only consulted by the api-gateway binary; the domain
// services ignore it.
type GatewayConfig struct {
	StudentServiceURL string `mapstructure:"student_service_url"`
	RoomServiceURL    string `mapstructure:"room_service_url"`
	BookingServiceURL string `mapstructure:"booking_service_url"`
	UpstreamTimeout   int    `mapstructure:"upstream_timeout_seconds"`
}

// Deployment contract: fixed default port per service, overridable via PORT.
var defaultPorts = map[string]string{
	"api-gateway":     "3000",
	"student-service": "3001",
	"room-service":    "3002",
	"booking-service": "3003",
}

// Load reads the optional config.<ENV>.yaml file and applies environment
// variable overrides on top. Everything has a default, so running with no
// config file and no environment works out of the box.
func Load(service string) (*Config, error) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	port, ok := defaultPorts[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yaml")
	v.AddConfigPath("/configs") // Kubernetes mount
	v.AddConfigPath("./configs")

	v.SetDefault("env", env)
	v.SetDefault("server.port", port)
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 10)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("gateway.student_service_url", "http://localhost:3001")
	v.SetDefault("gateway.room_service_url", "http://localhost:3002")
	v.SetDefault("gateway.booking_service_url", "http://localhost:3003")
	v.SetDefault("gateway.upstream_timeout_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file is optional - continue with defaults and ENV
	}

	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("gateway.student_service_url", "STUDENT_SERVICE_URL")
	v.BindEnv("gateway.room_service_url", "ROOM_SERVICE_URL")
	v.BindEnv("gateway.booking_service_url", "BOOKING_SERVICE_URL")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
