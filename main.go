package main

import (
	"fmt"
	"os"
	"time"

	"service-market/internal/auction"
	"service-market/internal/booking"
	"service-market/internal/config"
	model "service-market/internal/models"
	"service-market/internal/notify"
	"service-market/internal/repository"
	"service-market/internal/server"
	"service-market/utils"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	prepopulateAuctions(repo)

	hub := notify.NewHub()
	broadcaster := notify.NewBroadcaster(hub)

	ledger := auction.NewLedger(repo, broadcaster)
	bookingSvc := booking.NewService(repo, broadcaster)
	wsHandler := notify.NewWSHandler(hub, bookingSvc)

	go runExpirySweep(ledger, cfg.SweepInterval)

	router := server.SetupRouter(ledger, bookingSvc, wsHandler, []byte(cfg.JWTSecret))

	addr := ":" + cfg.Port
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// runExpirySweep periodically closes auctions whose deadline has passed.
// The sweep is idempotent, so overlapping with lazy expiry on reads is
// harmless.
func runExpirySweep(ledger *auction.Ledger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for now := range ticker.C {
		if err := ledger.CloseExpired(now); err != nil {
			utils.Error("expiry sweep failed", map[string]any{"error": err.Error()})
		}
	}
}

// prepopulateAuctions adds sample auctions to the in-memory repo
func prepopulateAuctions(repo *repository.MemoryRepo) {
	auctions := []model.Auction{
		{
			AuctionID:   utils.GenerateID(),
			Title:       "Limpeza pós-obra",
			Description: "Apartamento de 80m² após reforma",
			Category:    "Limpeza",
			OwnerID:     "user-demo-1",
			MaxPrice:    500,
			Deadline:    time.Now().Add(48 * time.Hour),
			Status:      model.AuctionOpen,
			CreatedAt:   time.Now().UTC(),
		},
		{
			AuctionID:   utils.GenerateID(),
			Title:       "Pintura de sala e quarto",
			Description: "Tinta por conta do prestador",
			Category:    "Pintura",
			OwnerID:     "user-demo-2",
			MaxPrice:    900,
			Deadline:    time.Now().Add(72 * time.Hour),
			Status:      model.AuctionOpen,
			CreatedAt:   time.Now().UTC(),
		},
	}

	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			utils.Warn("failed to seed auction", map[string]any{"error": err.Error()})
		}
	}
}
