package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vashudhara/internal/configs"
	"vashudhara/internal/delivery/kafka"
	"vashudhara/internal/mail"
	"vashudhara/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if !cfg.MailConfigured() {
		logrus.Fatal("SENDGRID_API_KEY and MAIL_FROM must be set for the notifier")
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := mail.NewSendGridClient(cfg.SendgridAPIKey, cfg.ShopName)
	notifier := service.NewNotifier(mailer, cfg.MailFrom, cfg.ShopName)

	consumer := kafka.NewConsumer(kafka.Config{
		Brokers: cfg.KafkaBrokersSlice(),
		GroupID: cfg.KafkaGroupID,
		Topic:   cfg.KafkaTopic,
		DLQ:     cfg.KafkaDLQTopic,
	}, notifier)
	defer func() {
		if cerr := consumer.Close(); cerr != nil {
			logrus.Errorf("kafka close: %v", cerr)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Subscribe(ctx); err != nil {
			logrus.Errorf("consumer stopped: %v", err)
			cancel()
		}
	}()
	logrus.Print("kafka subscription started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	cancel()
	wg.Wait()
	logrus.Print("notifier stopped")
}
