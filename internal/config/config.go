package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/startup-journey/internal/pkg"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090" validate:"required,numeric"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777" validate:"required,numeric"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Rules      Rules   `yaml:"rules"`
	Socket     Socket  `yaml:"socket"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required,numeric"`
}

type Session struct {
	// TTL is how long an idle session survives in redis; zero keeps it forever.
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h" validate:"gte=0"`
}

type Rules struct {
	// RandomSeed seeds card draws; zero seeds from the clock.
	RandomSeed       int64 `yaml:"random-seed" env:"RULES_RANDOM_SEED" env-default:"0"`
	ApplyTileEffects bool  `yaml:"apply-tile-effects" env:"RULES_APPLY_TILE_EFFECTS" env-default:"false"`
	StartingCash     int   `yaml:"starting-cash" env-default:"5000" validate:"gte=0"`
	StartingEnergy   int   `yaml:"starting-energy" env-default:"100" validate:"gte=0,lte=100"`
	StartingBurnRate int   `yaml:"starting-burn-rate" env-default:"500" validate:"gte=0"`
}

type Socket struct {
	MessagesPerSecond float64 `yaml:"messages-per-second" env-default:"10" validate:"gt=0"`
	Burst             int     `yaml:"burst" env-default:"20" validate:"gt=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := pkg.NewValidator().Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
