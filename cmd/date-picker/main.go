package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/date-picker/internal/config"
	"github.com/username/date-picker/internal/picker"
	"github.com/username/date-picker/pkg/random"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "date-picker",
		Short: "Calendar date picker",
		Long:  "Month-grid date picker with range limits, weekend and busy-day exclusions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				cfg.ExpandEnvVars()
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration for a subcommand
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	return cfg, nil
}

// pickerOptions merges configured defaults with command-line overrides
func pickerOptions(cfg *config.Config, start, end, excluded string) picker.Options {
	opts := picker.Options{
		StartDate:       cfg.Picker.StartDate,
		EndDate:         cfg.Picker.EndDate,
		ExcludedDates:   cfg.Picker.ExcludedDates,
		ExclusionFile:   cfg.Picker.ExclusionFile,
		DefaultSpanDays: cfg.Picker.DefaultSpanDays,
		Random:          random.NewSource(cfg.Picker.RandomSeed),
		Logger:          logger,
	}
	if start != "" {
		opts.StartDate = start
	}
	if end != "" {
		opts.EndDate = end
	}
	if excluded != "" {
		opts.ExcludedDates = excluded
	}
	return opts
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
