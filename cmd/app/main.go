package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/auth"
	"github.com/Domenick1991/roombooking/internal/bootstrap"
	"github.com/Domenick1991/roombooking/internal/cache"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/service/activity"
	"github.com/Domenick1991/roombooking/internal/service/customers"
	"github.com/Domenick1991/roombooking/internal/service/rooms"
	"github.com/Domenick1991/roombooking/internal/service/scheduletimes"
	"github.com/Domenick1991/roombooking/internal/service/scheduling"
	"github.com/Domenick1991/roombooking/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.RoomsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	scheduleTimeRepo := repository.NewScheduleTimeRepository(pool)
	schedulingRepo := repository.NewSchedulingRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	activityService := activity.NewActivityService(activityRepo, producer, cfg.Kafka.ActivityTopic)
	userService := users.NewUserService(userRepo, customerRepo, tokens, activityService)
	customerService := customers.NewCustomerService(customerRepo)
	roomService := rooms.NewRoomService(roomRepo, redisCache)
	scheduleTimeService := scheduletimes.NewScheduleTimeService(scheduleTimeRepo, roomRepo)
	schedulingService := scheduling.NewSchedulingService(
		schedulingRepo,
		scheduleTimeRepo,
		roomRepo,
		customerRepo,
		redisCache,
		activityService,
		time.Duration(cfg.Booking.SlotLockTTLMinutes)*time.Minute,
	)

	svc := bootstrap.Services{
		Users:         userService,
		Customers:     customerService,
		Rooms:         roomService,
		ScheduleTimes: scheduleTimeService,
		Schedulings:   schedulingService,
		Activity:      activityService,
		Tokens:        tokens,
		UserRepo:      userRepo,
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
