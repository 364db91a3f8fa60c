package main

import (
	"flag"
	"log"

	"github.com/jonboulle/clockwork"

	"github.com/openroster/roster-stats-service/internal/config"
	"github.com/openroster/roster-stats-service/internal/logger"
	"github.com/openroster/roster-stats-service/internal/repository/memory"
	"github.com/openroster/roster-stats-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	store := memory.NewStore()
	clock := clockwork.NewRealClock()

	// Transport wiring belongs to the embedding application; this binary
	// only proves the domain stack comes up.
	_ = service.NewPlayerService(store.Players(), clock, appLogger)
	_ = service.NewTeamPlayerService(store.TeamPlayers(), store.Players(), clock, appLogger)
	_ = service.NewStatisticService(store.Statistics(), store.TeamPlayers(), store.Players(), clock, appLogger)

	appLogger.Info().Str("service", cfg.Service.Name).Msg("domain services wired")
}
