package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pickem-league-go/config"
	"pickem-league-go/database"
	"pickem-league-go/handlers"
	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/middleware"
	"pickem-league-go/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Prefix:      cfg.Logging.Prefix,
		JSON:        cfg.Logging.JSON,
		EnableColor: cfg.Logging.EnableColor,
	})
	cfg.LogConfiguration()

	var (
		gameRepo     interfaces.GameRepository
		pickRepo     interfaces.PickRepository
		standingRepo interfaces.StandingRepository
	)

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		// In-memory fallback keeps the app usable without a database;
		// everything is lost on restart.
		logging.Errorf("Database connection failed: %v", err)
		logging.Warn("Continuing with in-memory storage")

		gameRepo = database.NewMemoryGameRepository()
		pickRepo = database.NewMemoryPickRepository()
		standingRepo = database.NewMemoryStandingRepository()
	} else {
		defer db.Close()

		gameRepo = database.NewMongoGameRepository(db)
		pickRepo = database.NewMongoPickRepository(db)
		standingRepo = database.NewMongoStandingRepository(db)
	}

	season := cfg.League.CurrentSeason
	weeks := cfg.League.WeeksPerSeason

	standingsService := services.NewStandingsService(gameRepo, pickRepo, standingRepo, season, weeks)
	gameService := services.NewGameService(gameRepo, standingsService, season)
	pickService := services.NewPickService(pickRepo, gameRepo, season, weeks)

	gameHandler := handlers.NewGameHandler(gameService)
	pickHandler := handlers.NewPickHandler(pickService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)

	r := mux.NewRouter()
	r.Use(middleware.SecurityMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", gameHandler.GetGames).Methods("GET")
	api.HandleFunc("/games/{id:[0-9]+}/result", gameHandler.RecordResult).Methods("POST")
	api.HandleFunc("/picks", pickHandler.SubmitSelection).Methods("POST")
	api.HandleFunc("/picks/tiebreaker", pickHandler.SubmitTiebreaker).Methods("PUT")
	api.HandleFunc("/picks", pickHandler.GetPicks).Methods("GET")
	api.HandleFunc("/weeks/{week:[0-9]+}/scores", standingsHandler.GetWeeklyScores).Methods("GET")
	api.HandleFunc("/weeks/{week:[0-9]+}/result", standingsHandler.GetWeekResult).Methods("GET")
	api.HandleFunc("/standings", standingsHandler.GetLeaderboard).Methods("GET")
	api.HandleFunc("/standings/recalculate", standingsHandler.Recalculate).Methods("POST")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	addr := cfg.GetServerAddress()
	logging.Infof("Server starting on %s", addr)
	logging.Fatal(http.ListenAndServe(addr, r))
}
