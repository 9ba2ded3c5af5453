// Package main is the entry point for the Smileline API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roguepikachu/smileline/internal/auth"
	"github.com/roguepikachu/smileline/internal/config"
	"github.com/roguepikachu/smileline/internal/data"
	"github.com/roguepikachu/smileline/internal/http/handler"
	"github.com/roguepikachu/smileline/internal/http/router"
	"github.com/roguepikachu/smileline/internal/notify"
	"github.com/roguepikachu/smileline/internal/ratelimit"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/internal/repository/cached"
	"github.com/roguepikachu/smileline/internal/repository/memory"
	"github.com/roguepikachu/smileline/internal/repository/postgres"
	redisrepo "github.com/roguepikachu/smileline/internal/repository/redis"
	"github.com/roguepikachu/smileline/internal/repository/static"
	"github.com/roguepikachu/smileline/internal/service"
	"github.com/roguepikachu/smileline/internal/site"
	"github.com/roguepikachu/smileline/pkg/logger"
)

func main() {
	logger.InitLogging()
	config.InitConf()
	conf := config.Conf

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if conf.ContactStore == config.StorePostgres || conf.ScheduleStore == config.StorePostgres {
		p, err := data.NewPostgresPool(ctx)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to postgres: %v", err)
		}
		defer p.Close()
		pool = p
	}
	var rdb *redis.Client
	if conf.RedisAddr != "" || conf.ContactStore == config.StoreRedis {
		rdb = data.NewRedisClient()
		defer rdb.Close()
	}

	contacts, err := contactRepository(ctx, conf, pool, rdb)
	if err != nil {
		logger.Fatal(ctx, "failed to prepare contact store: %v", err)
	}
	schedule, err := scheduleRepository(ctx, conf, pool, rdb)
	if err != nil {
		logger.Fatal(ctx, "failed to prepare schedule store: %v", err)
	}

	var notifier notify.Notifier = notify.Log{}
	if len(conf.KafkaBrokers) > 0 {
		k := notify.NewKafka(conf.KafkaBrokers, conf.KafkaContactTopic)
		defer k.Close()
		notifier = k
		logger.Info(ctx, "contact submissions published to kafka topic %s", conf.KafkaContactTopic)
	}

	clock := service.RealClock{}
	hoursSvc := service.NewHoursService(schedule, clock, conf.Location())
	hoursSvc.ValidateSchedule(ctx)
	var contactOpts []service.ContactOption
	if len(conf.SpamPatterns) > 0 {
		contactOpts = append(contactOpts, service.WithSpamFilter(service.NewSpamFilter(conf.SpamPatterns)))
	}
	contactSvc := service.NewContactService(contacts, notifier, clock, contactOpts...)

	var limiter ratelimit.Limiter = ratelimit.NewMemory(conf.ContactRateLimit, conf.ContactRateWindow)
	if rdb != nil {
		limiter = ratelimit.NewRedis(rdb, "ratelimit:contact", conf.ContactRateLimit, conf.ContactRateWindow)
	}
	var validator auth.TokenValidator
	if conf.AdminJWTSecret != "" {
		validator = auth.NewJWTValidator(conf.AdminJWTSecret)
	} else {
		logger.Warn(ctx, "ADMIN_JWT_SECRET not set, admin routes disabled")
	}

	r := router.NewRouter(router.Deps{
		Hours:          handler.NewHoursHandler(hoursSvc),
		Contact:        handler.NewContactHandler(contactSvc),
		Pages:          handler.NewPagesHandler(hoursSvc, practice(conf), conf.SiteURL),
		Health:         handler.NewHealthHandler(pool, rdb),
		ContactLimiter: limiter,
		AdminValidator: validator,
		AllowedOrigins: conf.AllowedOrigins,
	})

	port := conf.Port
	if port == "" {
		logger.Info(ctx, "no port configured, falling back to default: 8080")
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "failed to start server: %v", err)
		}
	}()
	logger.Info(ctx, "listening on :%s", port)

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "graceful shutdown failed: %v", err)
		os.Exit(1)
	}
}

func contactRepository(ctx context.Context, conf config.Config, pool *pgxpool.Pool, rdb *redis.Client) (repository.ContactRepository, error) {
	switch conf.ContactStore {
	case config.StorePostgres:
		repo := postgres.NewContactRepository(pool)
		return repo, repo.EnsureSchema(ctx)
	case config.StoreRedis:
		return redisrepo.NewContactRepository(rdb), nil
	case config.StoreMemory, "":
		logger.Warn(ctx, "contact submissions are kept in memory and lost on restart")
		return memory.NewContactRepository(), nil
	default:
		return nil, errors.New("unknown CONTACT_STORE " + conf.ContactStore)
	}
}

func scheduleRepository(ctx context.Context, conf config.Config, pool *pgxpool.Pool, rdb *redis.Client) (repository.ScheduleRepository, error) {
	var repo repository.ScheduleRepository
	switch conf.ScheduleStore {
	case config.StorePostgres:
		pg := postgres.NewScheduleRepository(pool)
		if err := pg.EnsureSchema(ctx, static.DefaultWeek()); err != nil {
			return nil, err
		}
		repo = pg
	case config.StoreStatic, "":
		repo = static.NewScheduleRepository(nil)
	default:
		return nil, errors.New("unknown SCHEDULE_STORE " + conf.ScheduleStore)
	}
	if rdb != nil && conf.ScheduleCacheTTL > 0 {
		repo = cached.NewScheduleRepository(repo, rdb, conf.ScheduleCacheTTL)
	}
	return repo, nil
}

func practice(conf config.Config) site.Practice {
	return site.Practice{
		Name:       conf.PracticeName,
		Phone:      conf.PracticePhone,
		Email:      conf.PracticeEmail,
		Street:     conf.PracticeStreet,
		City:       conf.PracticeCity,
		Region:     conf.PracticeRegion,
		PostalCode: conf.PracticePostalCode,
		Country:    conf.PracticeCountry,
		URL:        conf.SiteURL,
	}
}
