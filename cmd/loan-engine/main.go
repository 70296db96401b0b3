package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/calcsuite/loan-engine/internal/cache"
	"github.com/calcsuite/loan-engine/internal/config"
	"github.com/calcsuite/loan-engine/internal/server"
	"github.com/calcsuite/loan-engine/pkg/constants"
	"github.com/calcsuite/loan-engine/pkg/loan"
	"github.com/calcsuite/loan-engine/pkg/output"
	"github.com/calcsuite/loan-engine/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of computing scenarios")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	addr := flag.String("addr", "", "listen address override for -serve")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if *serve {
		runServer(*serverConfigLocation, *addr, *logLevel)
		return
	}

	// Load the config file to get scenarios and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("invalid output format %s", outputFormat),
			zap.String("op", "main"),
		)
	}

	if len(conf.Scenarios) == 0 {
		logger.Fatal("configuration contains no scenarios",
			zap.String("op", "main"),
		)
	}

	engine := loan.NewEngine(logger)
	for _, scenario := range conf.Scenarios {
		outcome := validation.Validate(scenario.Terms)
		if !outcome.Valid {
			for _, fieldErr := range outcome.Errors {
				logger.Warn(fmt.Sprintf("scenario %s: %s", scenario.Name, fieldErr.Message),
					zap.String("op", "main"),
					zap.String("field", fieldErr.Field),
				)
			}
			logger.Error(fmt.Sprintf("skipping invalid scenario %s", scenario.Name),
				zap.String("op", "main"),
			)
			continue
		}

		result, err := engine.Calculate(scenario.Terms)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to compute scenario %s", scenario.Name),
				zap.String("op", "main"),
				zap.Error(err),
			)
			continue
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(os.Stdout, scenario.Name, result)
		case constants.OutputFormatCSV:
			output.CsvFormat(os.Stdout, result)
		}
	}
}

func runServer(configLocation, addrOverride, logLevelOverride string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	if addrOverride != "" {
		cfg.Address = addrOverride
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var results cache.Cache
	if cfg.RedisAddress != "" {
		results = cache.NewRedis(cfg.RedisAddress)
		logger.Info("using redis result cache",
			zap.String("op", "main"),
			zap.String("address", cfg.RedisAddress),
		)
	} else {
		results = cache.NewMemory()
	}

	handler := server.NewHandler(logger, results, cfg.BodySizeBytes(), version)
	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
