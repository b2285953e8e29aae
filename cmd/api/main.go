package main

import (
	"context"
	"log"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/config"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/bootstrap"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog"
	paymentsrepo "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/repository"
)

const serviceName = "ideation-ai-launchpad"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ideas, err := catalog.LoadDataset()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if db != nil {
		if err := paymentsrepo.NewAuditRepository(db).EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		log.Printf("[info] operation=startup payment auditing enabled")
	} else {
		log.Printf("[info] operation=startup DB_DSN not set, payment auditing disabled")
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Ideas:       ideas,
		Redis:       redisClient,
		DB:          db,
	})

	log.Printf("[info] operation=startup listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
