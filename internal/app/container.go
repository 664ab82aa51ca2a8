package app

import (
	"context"
	"errors"
	"log"
	"time"

	"career-match/internal/config"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/infrastructure/broker"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/infrastructure/storage"
	"career-match/internal/ws"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// Container owns every long-lived connection. Redis, S3 and the broker are
// optional; the service runs without them in a degraded mode.
type Container struct {
	Config    config.Config
	Logger    *log.Logger
	DB        *dbpostgres.Pool
	Cache     *cache.Redis
	Store     storage.ObjectStore
	Publisher Publisher
	Hub       *ws.Hub

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     cache.NewRedis(cfg.Redis, logger),
		Publisher: broker.Noop{Logger: logger},
	}

	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3(ctx, cfg.Storage)
		if err != nil {
			logger.Printf("[Storage] S3 disabled: %v", err)
		} else {
			c.Store = s3
		}
	}

	if cfg.Broker.Enabled() {
		pub, err := broker.DialAMQP(cfg.Broker, logger)
		if err != nil {
			logger.Printf("[Broker] AMQP unavailable, events are dropped: %v", err)
		} else {
			c.Publisher = pub
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	c.Hub = ws.NewHub(logger)
	c.stopHub = stopHub
	go c.Hub.Run(hubCtx)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Publisher != nil {
		errs = append(errs, c.Publisher.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
