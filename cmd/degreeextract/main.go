package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/degreeextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("load .env")
	}

	var (
		inputDir    string
		outputPath  string
		outputPDF   string
		schemaPath  string
		configPath  string
		extensions  string
		workers     int
		manifest    bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&inputDir, "input", app.DefaultInputDir, "Directory of degree program text files")
	flag.StringVar(&outputPath, "output", app.DefaultOutputPath, "Path to write the degree collection (.json, or .js for an ES module)")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a PDF catalogue of all degrees")
	flag.StringVar(&schemaPath, "schema", "", "Optional YAML/JSON field schema replacing the built-in headings")
	flag.StringVar(&configPath, "config", os.Getenv("DEGREES_CONFIG"), "Optional YAML/JSON config file")
	flag.StringVar(&extensions, "ext", "", "Comma-separated file extensions to read (default .txt)")
	flag.IntVar(&workers, "workers", app.DefaultWorkers, "Number of documents processed concurrently")
	flag.BoolVar(&manifest, "manifest", false, "Write <output>.manifest.json with per-document digests")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("degreeextract %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	cfg := app.Config{
		InputDir:      inputDir,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDF,
		SchemaPath:    schemaPath,
		Workers:       workers,
		Manifest:      manifest,
		Verbose:       verbose,
	}
	if s := strings.TrimSpace(extensions); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cfg.Extensions = append(cfg.Extensions, v)
			}
		}
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
