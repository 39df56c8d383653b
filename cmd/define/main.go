// Command define fills in a definition for every unresolved word of the
// dictionary file, using WordNet or the FreeDictionary API.
//
// Configuration comes from CONFIG_PATH (default ./define.yaml), the
// environment and a local .env file.
//
// Flags:
//
//	--version  print the build version and exit
//
// Exit codes: 0 = success or interrupted, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/silverhammermba/bananagrams/internal/adapter/lookup/wn"
	"github.com/silverhammermba/bananagrams/internal/adapter/postgres"
	"github.com/silverhammermba/bananagrams/internal/adapter/postgres/dictentry"
	"github.com/silverhammermba/bananagrams/internal/adapter/provider/freedict"
	"github.com/silverhammermba/bananagrams/internal/app"
	"github.com/silverhammermba/bananagrams/internal/app/definer"
	"github.com/silverhammermba/bananagrams/internal/config"
	"github.com/silverhammermba/bananagrams/internal/define"
	"github.com/silverhammermba/bananagrams/internal/store"
)

// Compile-time interface assertions.
var (
	_ definer.Store = (*store.FileStore)(nil)
	_ definer.Store = (*dictentry.Repo)(nil)
	_ define.Source = (*wn.Source)(nil)
	_ define.Source = (*freedict.Provider)(nil)
)

func main() {
	versionFlag := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("define failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting define",
		slog.String("version", app.BuildVersion()),
		slog.String("store", cfg.Dictionary.Store),
		slog.String("backend", cfg.Lookup.Backend),
		slog.String("policy", cfg.Ranking.Policy),
	)

	src, err := newSource(cfg.Lookup, logger)
	if err != nil {
		return err
	}

	w := cfg.Ranking.Weights
	policy, err := define.NewPolicy(cfg.Ranking.Policy, define.Weights{
		Category:      w.Category,
		Synonyms:      w.Synonyms,
		Brevity:       w.Brevity,
		SelfReference: w.SelfReference,
	})
	if err != nil {
		return fmt.Errorf("ranking policy: %w", err)
	}

	file, seeded, err := store.Open(cfg.Dictionary.Path, cfg.Dictionary.SeedPath)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	if seeded {
		logger.Info("dictionary seeded",
			slog.String("path", cfg.Dictionary.Path),
			slog.String("seed", cfg.Dictionary.SeedPath),
		)
	}
	if dups := file.Dictionary().Duplicates(); dups > 0 {
		logger.Warn("duplicate words in dictionary", slog.Int("count", dups))
	}

	runCfg := definer.ConfigFrom(cfg, os.Stderr)

	if cfg.Dictionary.Store != config.StorePostgres {
		_, err := definer.New(logger, file, src, policy, runCfg).Run(ctx)
		return ignoreCancel(err)
	}

	return runPostgres(ctx, cfg, logger, file, src, policy, runCfg)
}

// runPostgres mirrors the dictionary file into PostgreSQL, resolves the
// pending rows there and writes the results back to the file.
func runPostgres(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	file *store.FileStore,
	src define.Source,
	policy define.Policy,
	runCfg definer.Config,
) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return err
	}

	repo := dictentry.New(pool, postgres.NewTxManager(pool))

	entries, err := file.Entries(ctx)
	if err != nil {
		return err
	}
	inserted, err := repo.Import(ctx, entries)
	if err != nil {
		return err
	}
	logger.Info("dictionary imported", slog.Int("entries", len(entries)), slog.Int("inserted", inserted))

	_, runErr := definer.New(logger, repo, src, policy, runCfg).Run(ctx)

	// Write back whatever was resolved, also after an interrupt.
	exportCtx := context.WithoutCancel(ctx)
	stored, err := repo.Entries(exportCtx)
	if err != nil {
		return errors.Join(runErr, fmt.Errorf("read back entries: %w", err))
	}
	merged := file.Merge(stored)
	if err := file.Flush(exportCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("write dictionary: %w", err))
	}
	logger.Info("dictionary written",
		slog.String("path", file.Path()),
		slog.Int("merged", merged),
	)

	return ignoreCancel(runErr)
}

func newSource(cfg config.LookupConfig, logger *slog.Logger) (define.Source, error) {
	switch cfg.Backend {
	case config.BackendFreeDict:
		return freedict.NewProviderWithURL(cfg.FreeDictURL, logger), nil
	default:
		src := wn.NewSource(logger, cfg.WNBinary)
		if err := src.Check(); err != nil {
			return nil, fmt.Errorf("WordNet not found: can't lookup definitions: %w", err)
		}
		return src, nil
	}
}

// ignoreCancel treats an interrupted run as a clean exit; its progress is
// already persisted.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
