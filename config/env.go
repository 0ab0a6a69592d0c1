package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvTickMS = "SNAKE_TICK_MS"
	EnvSeed   = "SNAKE_SEED"
	EnvDebug  = "SNAKE_DEBUG"
)

var envKeys = []string{EnvTickMS, EnvSeed, EnvDebug}

// ApplyEnv overlays values from the dotenv file at path and the process environment
// Process variables win over the file; a missing file is not an error
func (c *Config) ApplyEnv(path string) error {
	vars := make(map[string]string)

	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	return c.applyVars(vars)
}

func (c *Config) applyVars(vars map[string]string) error {
	if v, ok := vars[EnvTickMS]; ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickMS, err)
		}
		c.Timing.TickMS = ms
	}

	if v, ok := vars[EnvSeed]; ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Food.Seed = seed
	}

	if v, ok := vars[EnvDebug]; ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}

	return nil
}
