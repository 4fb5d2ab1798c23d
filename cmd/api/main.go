package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jinzhu/gorm"

	"vashudhara/internal/configs"
	httpdelivery "vashudhara/internal/delivery/http"
	"vashudhara/internal/delivery/kafka"
	"vashudhara/internal/gateway"
	"vashudhara/internal/invoice"
	"vashudhara/internal/repository"
	"vashudhara/internal/repository/cache"
	"vashudhara/internal/repository/postgres"
	"vashudhara/internal/service"
)

// @title vashudhara storefront service
// @version 1.0
// @description Catalog, cart, address and order lifecycle API for the Vashudhara storefront. Persists to postgres, mirrors orders into an in-memory dashboard cache and publishes order events to kafka for the notifier worker.

// @host localhost:8080
// @basePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db = connect(cfg)
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}

	pub, err := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("connected to kafka")

	var kv cache.KV = cache.NewCache()
	if cfg.CacheShards > 1 {
		kv = cache.NewShardedCache(cache.WithShards(cfg.CacheShards))
	}
	repo := repository.NewRepositoryWithCache(db, kv)
	gw := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.Currency)
	svc := service.NewService(repo, gw, pub, service.Options{
		GatewaySecret:  cfg.RazorpayKeySecret,
		Currency:       cfg.Currency,
		MailConfigured: cfg.MailConfigured(),
	})

	if err := svc.WarmCache(cfg.CacheWarmLimit); err != nil {
		logrus.Fatalf("warm cache: %s", err)
	}
	logrus.Print("cache warmed from db")

	h := httpdelivery.NewHandler(svc, cfg.JWTSecret, invoice.ShopIdentity{
		Name:    cfg.ShopName,
		Address: cfg.ShopAddress,
	})
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}

func connect(cfg configs.Config) *gorm.DB {
	// PgDSN prefers DATABASE_URL and falls back to the POSTGRES_* parts.
	db, err := postgres.ConnectURL(cfg.PgDSN())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	return db
}
