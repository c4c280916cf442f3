package userposts

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is a structure used for service configuration.
// It is intended to be mapped by viper.
type Config struct {
	OrganisationName string `mapstructure:"organisation_name" json:"organisationName"`
	ApplicationName  string `mapstructure:"application_name"  json:"applicationName"`
	InstanceName     string `mapstructure:"instance_name"     json:"instanceName"`

	Environment Environment `mapstructure:"environment" json:"environment"`

	HTTP HTTP `mapstructure:"http" json:"http"`
	OTEL OTEL `mapstructure:"otel" json:"otel"`
	Log  Log  `mapstructure:"log"  json:"log"`
	Seed Seed `mapstructure:"seed" json:"seed"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	HTTP struct {
		Port                  int  `mapstructure:"port"                    json:"port"`
		StatusEndpointEnabled bool `mapstructure:"status_endpoint_enabled" json:"-"`
		StatusEndpointPort    int  `mapstructure:"status_endpoint_port"    json:"-"`
	}

	OTEL struct {
		Enabled  bool   `mapstructure:"enabled"  json:"enabled"`
		Host     string `mapstructure:"host"     json:"host"`
		Port     int    `mapstructure:"port"     json:"port"`
		Hostname string `mapstructure:"hostname" json:"hostname"`
	}

	Log struct {
		// Level is a slog level name or one of SERVICE:INFO, SERVICE:DEBUG.
		Level string `mapstructure:"level" json:"level"`
		// LokiPushURL enables shipping logs to Loki, if set.
		LokiPushURL string `mapstructure:"loki_push_url" json:"-"`
	}

	// Seed controls the demo data created on startup.
	// With Users set to 0 the stores start empty.
	// A Seed of 0 generates different data on every start.
	Seed struct {
		Users        int   `mapstructure:"users"          json:"users"`
		PostsPerUser int   `mapstructure:"posts_per_user" json:"postsPerUser"`
		Seed         int64 `mapstructure:"seed"           json:"seed"`
	}
)

const envPrefix = "USERPOSTS"

// DefaultViper returns a new viper instance with all default values
// from Config set. Every key can be overwritten by an environment variable,
// e.g. USERPOSTS_HTTP_PORT.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("organisation_name", "")
	vip.SetDefault("application_name", "userposts")
	vip.SetDefault("instance_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("http.port", 8080)
	vip.SetDefault("http.status_endpoint_enabled", true)
	vip.SetDefault("http.status_endpoint_port", 2223)

	vip.SetDefault("otel.enabled", false)
	vip.SetDefault("otel.host", "localhost")
	vip.SetDefault("otel.port", 4317)
	vip.SetDefault("otel.hostname", "")

	vip.SetDefault("log.level", "INFO")
	vip.SetDefault("log.loki_push_url", "")

	vip.SetDefault("seed.users", 15)         //nolint:mnd
	vip.SetDefault("seed.posts_per_user", 3) //nolint:mnd
	vip.SetDefault("seed.seed", 1)

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method,
// so that the Environment is validated and the developer
// does not have to think about it when using DefaultViper.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append(opts, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		allowedEnvironmentHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err)
	}

	return nil
}

// Load reads the optional config file and returns the resulting Config.
// An empty path uses the defaults and the environment only.
func (vip *Viper) Load(path string) (*Config, error) {
	if path != "" {
		vip.SetConfigFile(path)

		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: could not read config file: %v", errConfigLoadFailed, err)
		}
	}

	conf := &Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err
	}

	if conf.Seed.Users < 0 || conf.Seed.PostsPerUser < 0 {
		return nil, fmt.Errorf("%w: seed values must not be negative", errConfigLoadFailed)
	}

	return conf, nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (interface{}, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		env := Environments()
		if slices.Contains(env, Environment(fmt.Sprint(data))) {
			return data, nil
		}

		e := make([]string, 0, len(env))
		for _, env := range env {
			e = append(e, string(env))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(e, ", ")) //nolint:err113,lll // accept dynamic error
	}
}
