package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bibliotek/lending-service/config"
	"github.com/bibliotek/lending-service/internal/handler"
	"github.com/bibliotek/lending-service/internal/repository"
	"github.com/bibliotek/lending-service/internal/server"
	"github.com/bibliotek/lending-service/internal/service"
	"github.com/bibliotek/lending-service/migrations"
	"github.com/bibliotek/lending-service/pkg/auth"
	"github.com/bibliotek/lending-service/pkg/kafka"
	"github.com/bibliotek/lending-service/pkg/logger"
	"github.com/bibliotek/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")
	if cfg.JWTKey != "" {
		auth.JWTKey = []byte(cfg.JWTKey)
	}

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}

	producer, err := kafka.NewAsyncProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewAsyncProducer %w", err)
	}
	svc := service.NewService(repo, service.NewEventLog(producer, kafka.BorrowEventsTopic), log)

	// seeding failures must not keep the process from starting
	if err := svc.Seed(context.Background()); err != nil {
		log.Warn("seed", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.LendingConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kafka.Consume(gctx, consumer, handler.NewConsumer(svc.RecordEvent, log), kafka.BorrowEventsTopic, log)
		return nil
	})
	g.Go(srv.Run)
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	if err = g.Wait(); err != nil {
		log.Error("g.Wait", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
