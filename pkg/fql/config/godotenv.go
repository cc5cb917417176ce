package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = ".env"
	defaultOverrideFileName = ".local.env"
)

type logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Fatalf(format string, args ...any)
}

// EnvLoader reads configs from <folder>/.env, then overrides them with
// <folder>/.<APP_ENV>.env (or .local.env when APP_ENV is unset). Variables
// already present in the process environment always win.
type EnvLoader struct {
	logger logger
}

// NewEnvFile loads the env files of configFolder and returns a Config backed
// by the process environment.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	var (
		defaultFile  = filepath.Join(folder, defaultFileName)
		overrideFile = filepath.Join(folder, defaultOverrideFileName)
		env          = e.Get("APP_ENV")
	)

	initialEnv := systemEnv()

	e.load(defaultFile, godotenv.Load)

	if env != "" {
		overrideFile = filepath.Join(folder, "."+env+".env")
	}

	e.load(overrideFile, godotenv.Overload)

	// the override file must not clobber variables set by the caller
	for key, value := range initialEnv {
		_ = os.Setenv(key, value)
	}
}

func (e *EnvLoader) load(file string, loadFn func(...string) error) {
	err := loadFn(file)

	switch {
	case err == nil:
		e.logger.Infof("loaded config from file: %v", file)
	case errors.Is(err, fs.ErrNotExist):
		e.logger.Debugf("config file not found: %v", file)
	default:
		e.logger.Fatalf("failed to load config from file: %v, err: %v", file, err)
	}
}

func systemEnv() map[string]string {
	vars := make(map[string]string)

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			vars[key] = value
		}
	}

	return vars
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
