// Command seeder fills the word store from offline sources: the padagalu.txt
// word list and, optionally, saved HTML pages.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse sources without writing to DB
//	--seeder-config  path to seeder YAML config file
//	--words          word list path, overrides config
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres"
	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/padagalu-backend/internal/app"
	"github.com/heartmarshall/padagalu-backend/internal/app/seeder"
	"github.com/heartmarshall/padagalu-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse sources without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	wordsFlag := flag.String("words", "", "word list path (overrides config)")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *wordsFlag != "" {
		seederCfg.WordListPath = *wordsFlag
	}

	var phases []string
	if *phaseFlag != "" {
		for _, ph := range strings.Split(*phaseFlag, ",") {
			if ph = strings.TrimSpace(ph); ph != "" {
				phases = append(phases, ph)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, word.New(pool), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
