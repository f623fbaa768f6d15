package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker drains the activity topic into the logs table, keeping audit
// writes off the request path.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	activityRepo := repository.NewActivityRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ActivityTopic)
	defer consumer.Close()

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.ActivityEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode activity event: %v", err)
			return nil
		}

		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			log.Printf("activity event with bad user id %q: %v", event.UserID, err)
			return nil
		}

		entry := &domain.ActivityLog{
			TypeActivity: domain.ActivityType(event.TypeActivity),
			Page:         domain.PageContext(event.Page),
			UserID:       userID,
			CreatedAt:    event.OccurredAt,
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now().UTC()
		}
		if err := activityRepo.Insert(ctx, entry); err != nil {
			// audit persistence is best-effort, do not stall the consumer
			log.Printf("insert activity log: %v", err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
