package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/gesta/internal/classify"
	"github.com/alexanderramin/gesta/internal/cli"
	"github.com/alexanderramin/gesta/internal/config"
	"github.com/alexanderramin/gesta/internal/db"
	"github.com/alexanderramin/gesta/internal/enhance"
	"github.com/alexanderramin/gesta/internal/generation"
	"github.com/alexanderramin/gesta/internal/intelligence"
	"github.com/alexanderramin/gesta/internal/llm"
	"github.com/alexanderramin/gesta/internal/progression"
	"github.com/alexanderramin/gesta/internal/repository"
	"github.com/alexanderramin/gesta/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	questRepo := repository.NewSQLiteQuestRepo(database)
	playerRepo := repository.NewSQLitePlayerRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Rule engine
	rules := progression.Default()
	classifier := classify.Default()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	generator := generation.NewGenerator(classifier, rules, generation.DefaultLore(),
		generation.NewLockedPicker(generation.NewSeededPicker(seed)))
	enhancer := enhance.New(classifier, rules)

	// The external generator is optional; without it every prompt goes to the
	// fallback generator.
	var llmClient llm.LLMClient
	logger := slog.New(slog.DiscardHandler)
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		llmClient = llm.NewOllamaClient(cfg.LLM, observer)
	}
	drafts := intelligence.NewQuestDraftService(llmClient, generator, enhancer, logger)

	var opts []service.Option
	if cfg.LogUseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	app := &cli.App{
		Quests:     service.NewQuestService(questRepo, playerRepo, uow, rules, enhancer, drafts, opts...),
		Players:    service.NewPlayerService(playerRepo, questRepo, completionRepo, rules, opts...),
		Rules:      rules,
		Classifier: classifier,
		LLM:        llmClient,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
