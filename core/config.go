package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "CLASSTRACK"

// Config holds all process-wide settings. It is built once at startup and
// passed by reference into each component; there are no ambient globals.
type Config struct {
	Debug         bool
	AppName       string
	Address       string
	DatabasePath  string
	SecretKey     string
	TokenLifetime time.Duration
}

// LoadConfig reads configuration from the environment (prefixed with
// CLASSTRACK_), falling back to an optional .env file and built-in defaults.
// The signing secret has no default outside debug mode.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("debug", true)
	v.SetDefault("appName", "Classtrack")
	v.SetDefault("address", ":8000")
	v.SetDefault("databasePath", "classtrack.db")
	v.SetDefault("secretKey", "")
	v.SetDefault("tokenLifetime", 30*time.Minute)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), ".env")
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := &Config{
		Debug:         v.GetBool("debug"),
		AppName:       v.GetString("appName"),
		Address:       v.GetString("address"),
		DatabasePath:  v.GetString("databasePath"),
		SecretKey:     v.GetString("secretKey"),
		TokenLifetime: v.GetDuration("tokenLifetime"),
	}

	if conf.SecretKey == "" {
		if !conf.Debug {
			return nil, errors.New("config: CLASSTRACK_SECRETKEY is required outside debug mode")
		}
		conf.SecretKey = "insecure-dev-key-do-not-use-in-prod"
	}
	if conf.TokenLifetime <= 0 {
		return nil, errors.New("config: tokenLifetime must be positive")
	}
	return conf, nil
}

// Getwd returns the current working directory; it panics on failure since
// nothing sensible can run without one.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}
