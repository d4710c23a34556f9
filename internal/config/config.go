// Package config loads server configuration from COMPENDIUM_* environment
// variables.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "COMPENDIUM_"

// Config is the full server configuration
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	Redis       RedisConfig       `envPrefix:"REDIS_"`
	Preferences PreferencesConfig `envPrefix:"PREFERENCES_"`
	Auth        AuthConfig        `envPrefix:"AUTH_"`
	SRD         SRDConfig         `envPrefix:"SRD_"`
	Log         LogConfig         `envPrefix:"LOG_"`

	OTELEndpoint string `env:"OTEL_ENDPOINT"`

	// AllowedDiceSides restricts dice rolls; empty allows any die
	AllowedDiceSides []int `env:"ALLOWED_DICE_SIDES" envSeparator:"," envDefault:"2,3,4,6,8,10,12,20,100"`

	// DiceSessionTTL is the lifetime of a new dice session
	DiceSessionTTL time.Duration `env:"DICE_SESSION_TTL" envDefault:"15m"`
}

// RedisConfig points at the document store
type RedisConfig struct {
	// Addrs holds one address for a single node, several for a cluster
	Addrs    []string `env:"ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	Password string   `env:"PASSWORD"`
	DB       int      `env:"DB" envDefault:"0"`
	PoolSize int      `env:"POOL_SIZE" envDefault:"10"`
	UseTLS   bool     `env:"TLS" envDefault:"false"`
}

// PreferencesConfig locates the SQLite preference store
type PreferencesConfig struct {
	Path string `env:"PATH" envDefault:"compendium-preferences.db"`
}

// AuthConfig configures bearer tokens
type AuthConfig struct {
	Secret              string        `env:"JWT_SECRET"`
	Issuer              string        `env:"JWT_ISSUER" envDefault:"rpg-compendium"`
	Audience            string        `env:"JWT_AUDIENCE" envDefault:"rpg-compendium-api"`
	TokenTTL            time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	AllowAnonymousReads bool          `env:"ALLOW_ANONYMOUS_READS" envDefault:"true"`
}

// SRDConfig configures the dnd5e API used for SRD imports
type SRDConfig struct {
	BaseURL     string        `env:"BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// LogConfig configures slog output
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load reads the process environment
func Load() (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads variables from the given map instead of the process
// environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if len(c.Redis.Addrs) == 0 {
		vb.RequiredField("redis.addrs")
	}
	errors.ValidateRequired("preferences.path", c.Preferences.Path, vb)
	errors.ValidateRequired("auth.jwt_secret", c.Auth.Secret, vb)
	if c.Auth.TokenTTL <= 0 {
		vb.Field("auth.token_ttl", "must be positive")
	}
	for _, sides := range c.AllowedDiceSides {
		if sides < 2 {
			vb.Fieldf("allowed_dice_sides", "die sides must be at least 2, got %d", sides)
		}
	}
	if c.DiceSessionTTL <= 0 {
		vb.Field("dice_session_ttl", "must be positive")
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		vb.Fieldf("log.format", "must be json or text, got %q", c.Log.Format)
	}

	return vb.Build()
}
