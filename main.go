package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mazad-engine/internal/config"
	"mazad-engine/internal/engine"
	"mazad-engine/internal/events"
	model "mazad-engine/internal/models"
	"mazad-engine/internal/repository"
	"mazad-engine/internal/scheduler"
	"mazad-engine/internal/server"
	"mazad-engine/utils"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLogLevel(cfg.LogLevel)

	store := repository.NewMemoryStore()
	seedAuctions(store)

	hub := events.NewHub()
	defer hub.Close()

	eng := engine.New(store, hub, engine.Options{
		ExtensionWindow:   cfg.ExtensionWindow,
		ExtensionDuration: cfg.ExtensionDuration,
		LockTimeout:       cfg.LockTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper, err := scheduler.NewSweeper(scheduler.SweeperParams{
		Closer:   eng,
		Store:    store,
		Lock:     sweepLock(cfg),
		Interval: cfg.SweepInterval,
	})
	if err != nil {
		utils.Fatal("failed to build closing sweeper", map[string]any{"error": err.Error()})
	}
	go func() {
		_ = sweeper.Run(ctx)
	}()

	router := server.SetupRouter(eng, hub)

	utils.Info("starting auction engine", map[string]any{"port": cfg.Port})
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// sweepLock builds the sweep coordination lock: Redis-backed when an address
// is configured, otherwise uncoordinated.
func sweepLock(cfg *config.Config) scheduler.Lock {
	if cfg.RedisAddr == "" {
		return scheduler.NoopLock{}
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	lock, err := scheduler.NewRedisLock(scheduler.NewRedisCommands(client), cfg.SweepLockKey, cfg.SweepLockTTL)
	if err != nil {
		utils.Fatal("failed to build redis sweep lock", map[string]any{"error": err.Error()})
	}
	return lock
}

// seedAuctions adds sample auctions so the engine is usable out of the box
func seedAuctions(store *repository.MemoryStore) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{
			ID:            "auction1",
			Title:         "ساعة رولكس دايتونا",
			Category:      "watches",
			SellerID:      "seller1",
			StartingPrice: decimal.NewFromInt(1000),
			BidIncrement:  decimal.NewFromInt(100),
			EndTime:       now.Add(24 * time.Hour),
			Status:        model.StatusActive,
		},
		{
			ID:            "auction2",
			Title:         "حقيبة هيرميس بيركين",
			Category:      "bags",
			SellerID:      "seller2",
			StartingPrice: decimal.NewFromInt(5000),
			BidIncrement:  decimal.NewFromInt(250),
			ReservePrice:  decimal.NewNullDecimal(decimal.NewFromInt(8000)),
			EndTime:       now.Add(48 * time.Hour),
			Status:        model.StatusActive,
		},
		{
			ID:            "auction3",
			Title:         "لوحة فنية أصلية",
			Category:      "art",
			SellerID:      "seller1",
			StartingPrice: decimal.NewFromInt(2500),
			BidIncrement:  decimal.NewFromInt(150),
			EndTime:       now.Add(72 * time.Hour),
			Status:        model.StatusScheduled,
		},
	}

	for _, auction := range auctions {
		store.AddAuction(auction)
	}
}
