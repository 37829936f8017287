package infra

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type HTTPConfig struct {
	Port int `envconfig:"HTTP_PORT" default:"8000"`
}

type ProviderConfig struct {
	TwelveDataKey  string `envconfig:"TWELVEDATA_KEY"`
	FinnhubKey     string `envconfig:"FINNHUB_KEY"`
	TimeoutSeconds int    `envconfig:"PROVIDER_TIMEOUT" default:"15"`
}

type SignalsConfig struct {
	// File holds the whole signals document, created empty on first run.
	File string `envconfig:"SIGNALS_FILE" default:"signals.json"`
	// Token guards the mutating endpoint. The default is a placeholder and
	// must be overridden in any real deployment.
	Token string `envconfig:"SIGNALS_TOKEN" default:"astro-secret"`
}

type CacheConfig struct {
	Dir string `envconfig:"CANDLES_CACHE_DIR" default:"cache"`
}

type Config struct {
	HTTP     HTTPConfig
	Provider ProviderConfig
	Signals  SignalsConfig
	Cache    CacheConfig
}

// SetConfig loads an optional .env file and resolves the configuration from
// the environment. Secrets are not echoed back.
func SetConfig(configPath string) Config {
	if err := godotenv.Load(configPath); err != nil {
		log.WithField("path", configPath).Debug("no .env file loaded")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.WithFields(log.Fields{
		"port":       cfg.HTTP.Port,
		"twelvedata": cfg.Provider.TwelveDataKey != "",
		"finnhub":    cfg.Provider.FinnhubKey != "",
		"signals":    cfg.Signals.File,
		"cache":      cfg.Cache.Dir,
	}).Info("configuration loaded")

	return cfg
}
