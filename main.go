// main.go
//
// Batch simulator entry point.
// Responsibilities:
//   - Load configuration (.env, flags) and the word corpus.
//   - Build the frequency tables and run one solve attempt per target word,
//     in parallel across workers.
//   - Write the summary CSV and detailed JSON logs, persist the run to
//     SQLite, and log the batch summary.
//   - Alternatively (-serve) expose past runs over the results API.

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Kerpackie/WorldeSimulator/internal/httpserver"
	"github.com/Kerpackie/WorldeSimulator/internal/report"
	"github.com/Kerpackie/WorldeSimulator/internal/sample"
	"github.com/Kerpackie/WorldeSimulator/internal/solver"
	"github.com/Kerpackie/WorldeSimulator/internal/stats"
	"github.com/Kerpackie/WorldeSimulator/internal/store"
	"github.com/Kerpackie/WorldeSimulator/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		sampleN     = flag.Int("sample", 100, "number of target words to simulate (0 = all)")
		seed        = flag.String("seed", "wordle", "seed for deterministic target sampling")
		outPrefix   = flag.String("out", "wordle", "output file prefix for CSV/JSON results")
		dbPath      = flag.String("db", "./data/runs.db", "sqlite path for run persistence (empty = skip)")
		weightsPath = flag.String("weights", "", "YAML weights file (default: built-in weights)")
		serve       = flag.Bool("serve", false, "serve the results API instead of running a batch")
	)
	flag.Parse()

	if *serve {
		serveAPI(*dbPath)
		return
	}
	runBatch(*sampleN, *seed, *outPrefix, *dbPath, *weightsPath)
}

// runBatch simulates every sampled target word and reports the results.
func runBatch(sampleN int, seed, outPrefix, dbPath, weightsPath string) {
	started := time.Now()
	ctx := context.Background()

	corpus, err := words.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word corpus")
	}
	log.Info().Int("words", len(corpus)).Msg("corpus loaded")

	weights := solver.DefaultWeights()
	if p := firstNonEmpty(weightsPath, os.Getenv("WEIGHTS_FILE")); p != "" {
		weights, err = solver.LoadWeights(p)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load weights")
		}
		log.Info().Str("file", p).Msg("weights loaded")
	}

	tables := stats.Build(corpus)
	sim := solver.New(corpus, tables, weights)
	targets := sample.Take(corpus, seed, sampleN)
	log.Info().Int("targets", len(targets)).Msg("running simulations")

	collector := store.NewMemoryCollector()
	bar := progressbar.Default(int64(len(targets)), "simulating")

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, target := range targets {
		target := target
		g.Go(func() error {
			res, err := sim.Solve(target)
			if err != nil {
				// One target's failure never aborts the batch.
				log.Warn().Err(err).Str("word", target).Msg("skipping target")
				return nil
			}
			_ = collector.Save(res)
			_ = bar.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	results := collector.Drain(targets)
	sum := report.Summarize(results)
	log.Info().
		Int("tested", sum.Tested).
		Int("solved", sum.SolvedCount).
		Int("failed", len(sum.Failed)).
		Float64("avgAttempts", sum.AvgAttempts).
		Int("minAttempts", sum.MinAttempts).
		Int("maxAttempts", sum.MaxAttempts).
		Interface("distribution", sum.Distribution).
		Msg("simulation summary")
	for _, w := range sum.Failed {
		log.Warn().Str("word", w).Msg("unsolved")
	}

	if err := report.SaveFiles(outPrefix, results); err != nil {
		log.Fatal().Err(err).Msg("failed to write result files")
	}
	log.Info().
		Str("csv", outPrefix+"_summary.csv").
		Str("json", outPrefix+"_details.json").
		Msg("results saved")

	if dbPath != "" {
		db, err := openDB(dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open results db")
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate results db")
		}
		id, err := insertRun(db, started, time.Now(), results, sum)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to persist run")
		}
		log.Info().Str("runId", id).Str("db", dbPath).Msg("run persisted")
	}
}

// serveAPI starts the read-only results API over an existing results db.
func serveAPI(dbPath string) {
	if dbPath == "" {
		log.Fatal().Msg("-serve requires a -db path")
	}
	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results db")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate results db")
	}

	srv := httpserver.New(db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting results api")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
