package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/fitplan/internal/cli"
	"github.com/alexanderramin/fitplan/internal/db"
	"github.com/alexanderramin/fitplan/internal/intelligence"
	"github.com/alexanderramin/fitplan/internal/llm"
	"github.com/alexanderramin/fitplan/internal/logging"
	"github.com/alexanderramin/fitplan/internal/repository"
	"github.com/alexanderramin/fitplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	log := logging.FromEnv(os.Stderr)

	database, err := db.OpenDB(db.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The orchestrator treats a nil client as a disabled model and goes
	// straight to the synthesizer.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(log)
	}
	client, err := llm.NewClient(llmCfg, observer)
	if err != nil {
		log.Info().Err(err).Msg("model disabled; plans will be synthesized")
		client = nil
	}
	orchestrator := intelligence.NewOrchestrator(client, log)

	app := &cli.App{
		Generation: service.NewGenerationService(orchestrator, profileRepo, uow, log, service.NewLogUseCaseObserver(log)),
		Profiles:   service.NewProfileService(profileRepo),
		History: service.NewPlanHistoryService(
			repository.NewSQLitePlanRepo(database),
			repository.NewSQLiteGenerationEventRepo(database),
		),
		Model: client,
		Log:   log,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
