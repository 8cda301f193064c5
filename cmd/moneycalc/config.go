package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	money "github.com/govalues/scaledmoney"
)

// Config holds the calculator settings read from a TOML file.
type Config struct {
	Separator string            `toml:"Separator"`
	Precision int               `toml:"Precision"`
	LogLevel  string            `toml:"LogLevel"`
	Rates     map[string]string `toml:"Rates"`
}

func defaultConfig() Config {
	return Config{
		Separator: ".",
		Precision: money.DefaultPrec,
		LogLevel:  "warn",
	}
}

// loadConfig reads path when it is not empty and then applies overrides
// from the environment or, for variables the environment does not set,
// from envFile. A missing envFile is ignored.
func loadConfig(path, envFile string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config file %s has unknown field %q", path, undecoded[0].String())
		}
	}

	env, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Separator = getEnv(env, "MONEYCALC_SEPARATOR", cfg.Separator)
	cfg.LogLevel = getEnv(env, "MONEYCALC_LOG_LEVEL", cfg.LogLevel)
	var problems []string
	if cfg.Precision, err = getEnvInt(env, "MONEYCALC_PRECISION", cfg.Precision); err != nil {
		problems = append(problems, err.Error())
	}

	if err := cfg.validate(problems); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	return c.validate(nil)
}

func (c Config) validate(errs []string) error {
	if c.Separator == "" {
		errs = append(errs, "Separator must not be empty")
	} else if strings.ContainsAny(c.Separator, "-0123456789") {
		errs = append(errs, fmt.Sprintf("Separator %q must not contain digits or '-'", c.Separator))
	}
	if c.Precision < 0 {
		errs = append(errs, fmt.Sprintf("Precision %d must not be negative", c.Precision))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := c.RateTable(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LogLevel: %w", err)
	}
	return level, nil
}

// RateTable builds a rate table from entries such as "USD/BRL" = "5.10".
func (c Config) RateTable() (*money.RateTable, error) {
	table := money.NewRateTable()
	for pair, rate := range c.Rates {
		base, quote, ok := strings.Cut(pair, "/")
		if !ok {
			return nil, fmt.Errorf("rate %q: key must look like BASE/QUOTE", pair)
		}
		r, err := money.ParseExchRate(base, quote, rate)
		if err != nil {
			return nil, fmt.Errorf("rate %q: %w", pair, err)
		}
		table.Set(r)
	}
	return table, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return env, nil
}

func getEnv(env map[string]string, key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := env[key]; value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(env map[string]string, key string, defaultValue int) (int, error) {
	value := getEnv(env, key, "")
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s %q must be an integer", key, value)
	}
	return i, nil
}
