package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gostryker/internal/app"
	"github.com/hyperifyio/gostryker/internal/fetch"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	var (
		configPath     string
		userAgent      string
		maxRetries     int
		timeoutSeconds int
		sheetsCreds    string
		spreadsheetID  string
		sheetName      string
		csvPath        string
		verbose        bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("GOSTRYKER_CONFIG"), "Path to YAML/JSON config file")
	flag.StringVar(&userAgent, "fetch.ua", fetch.DefaultUserAgent, "User-Agent header for page fetches")
	flag.IntVar(&maxRetries, "fetch.retries", envInt("GOSTRYKER_MAX_RETRIES", fetch.DefaultMaxAttempts), "Total fetch attempts per URL")
	flag.IntVar(&timeoutSeconds, "fetch.timeout", envInt("GOSTRYKER_TIMEOUT_SECONDS", int(fetch.DefaultTimeout/time.Second)), "Per-request timeout in seconds")
	flag.StringVar(&sheetsCreds, "sheets.credentials", os.Getenv("SHEETS_CREDENTIALS"), "Path to Google service-account credentials JSON")
	flag.StringVar(&spreadsheetID, "sheets.id", os.Getenv("SHEETS_SPREADSHEET_ID"), "Google Spreadsheet id to append rows to")
	flag.StringVar(&sheetName, "sheets.name", os.Getenv("SHEETS_NAME"), "Worksheet name (default Sheet1)")
	flag.StringVar(&csvPath, "export.csv", os.Getenv("GOSTRYKER_CSV"), "CSV file to append rows to when Sheets is not configured")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: gostryker [flags] URL [URL ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := app.Config{
		UserAgent:         userAgent,
		MaxRetries:        maxRetries,
		TimeoutSeconds:    timeoutSeconds,
		SheetsCredentials: sheetsCreds,
		SpreadsheetID:     spreadsheetID,
		SheetName:         sheetName,
		CSVPath:           csvPath,
		Verbose:           verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}
	defer a.Close()

	if err := a.Run(ctx, flag.Args(), os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
