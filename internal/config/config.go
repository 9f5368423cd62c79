package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Default values for configuration
const (
	DefaultPoints   = 10
	DefaultVolume   = 0.3
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"
	MaxPoints       = 99 // Scores are drawn with two digits
)

// Environment variables that provide defaults for the flags
const (
	EnvPoints   = "BOING_POINTS"
	EnvVolume   = "BOING_VOLUME"
	EnvMute     = "BOING_MUTE"
	EnvLog      = "BOING_LOG"
	EnvLogLevel = "BOING_LOG_LEVEL"
)

// Config holds the application configuration
type Config struct {
	PointsToWin int
	Volume      float64
	Mute        bool
	LogFile     string
	LogLevel    string
}

// Load reads defaults from envFile (if it exists) and the process
// environment, then applies command line flags on top.
func Load(args []string, envFile string) (*Config, error) {
	env, err := readEnv(envFile)
	if err != nil {
		return nil, err
	}
	return parse(args, env)
}

// ParseArgs parses command line arguments using only the process
// environment for defaults
func ParseArgs(args []string) (*Config, error) {
	env, err := readEnv("")
	if err != nil {
		return nil, err
	}
	return parse(args, env)
}

// readEnv merges envFile with the process environment. Variables already
// set in the process take precedence.
func readEnv(envFile string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range []string{EnvPoints, EnvVolume, EnvMute, EnvLog, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func parse(args []string, env map[string]string) (*Config, error) {
	defPoints := DefaultPoints
	if v, ok := env[EnvPoints]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvPoints, v, err)
		}
		defPoints = n
	}

	defVolume := DefaultVolume
	if v, ok := env[EnvVolume]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvVolume, v, err)
		}
		defVolume = f
	}

	defMute := false
	if v, ok := env[EnvMute]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMute, v, err)
		}
		defMute = b
	}

	defLevel := DefaultLogLevel
	if v, ok := env[EnvLogLevel]; ok {
		defLevel = v
	}

	flags := flag.NewFlagSet("boing", flag.ContinueOnError)

	points := flags.Int("points", defPoints, "points to win (1-99)")
	volume := flags.Float64("volume", defVolume, "sound volume (0-1)")
	mute := flags.Bool("mute", defMute, "disable sound")
	logFile := flags.String("log", env[EnvLog], "write logs to this file")
	logLevel := flags.String("log-level", defLevel, "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Validate points
	if *points < 1 || *points > MaxPoints {
		return nil, fmt.Errorf("points must be between 1 and %d, got %d", MaxPoints, *points)
	}

	// Validate volume
	if *volume < 0 || *volume > 1 {
		return nil, fmt.Errorf("volume must be between 0 and 1, got %g", *volume)
	}

	if _, err := zerolog.ParseLevel(*logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}

	cfg := &Config{
		PointsToWin: *points,
		Volume:      *volume,
		Mute:        *mute,
		LogFile:     *logFile,
		LogLevel:    *logLevel,
	}

	return cfg, nil
}
