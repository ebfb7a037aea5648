package tools

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read as configuration, e.g. GEO_EXTENTS_TOLERANCE_NM.
const EnvPrefix = "GEO_EXTENTS"

const (
	ConfigSrid        = "srid"
	ConfigToleranceNM = "tolerance-nm"
	ConfigMarginNM    = "margin-nm"
	ConfigBuckets     = "buckets"
	ConfigWorkers     = "workers"
)

var configDefaults = map[string]interface{}{
	ConfigSrid:        4326,
	ConfigToleranceNM: 0.0,
	ConfigMarginNM:    0.0,
	ConfigBuckets:     360,
	ConfigWorkers:     0,
}

// LoadConfig returns the defaults of the command line flags. Values come, by increasing priority, from
// the built-in defaults, the optional config file and the environment. A .env file in the working
// directory is loaded first.
func LoadConfig(configFile string) (*viper.Viper, error) {
	_ = godotenv.Load(".env")

	conf := viper.New()
	for key, value := range configDefaults {
		conf.SetDefault(key, value)
	}
	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if configFile != "" {
		conf.SetConfigFile(configFile)
		if err := conf.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", configFile)
		}
	}
	return conf, nil
}
