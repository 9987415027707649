// Command recalc rebuilds the cached season standings from the games
// and picks collections. Useful after backfilling results or fixing a
// pick sheet by hand.
package main

import (
	"context"
	"fmt"
	"time"

	"pickem-league-go/config"
	"pickem-league-go/database"
	"pickem-league-go/logging"
	"pickem-league-go/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	gameRepo := database.NewMongoGameRepository(db)
	pickRepo := database.NewMongoPickRepository(db)
	standingRepo := database.NewMongoStandingRepository(db)

	standingsService := services.NewStandingsService(
		gameRepo, pickRepo, standingRepo,
		cfg.League.CurrentSeason, cfg.League.WeeksPerSeason,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	standings, err := standingsService.RecalculateSeason(ctx)
	if err != nil {
		logging.Fatalf("Recalculation failed: %v", err)
	}

	fmt.Printf("Season %d standings (%d players):\n", cfg.League.CurrentSeason, len(standings))
	for i, s := range standings {
		fmt.Printf("%2d. %-20s weekly_wins=%d correct=%d graded=%d pct=%.4f\n",
			i+1, s.Player, s.WeeklyWins, s.Wins, s.TotalGames, s.WinPercentage)
	}
}
