package deps

import (
	"context"
	"fmt"
	"forumaccount/internal/config"
	"forumaccount/internal/core/domain/content"
	"forumaccount/internal/core/domain/email"
	"forumaccount/internal/core/domain/link"
	dl "forumaccount/internal/core/domain/logging"
	drl "forumaccount/internal/core/domain/rate_limiter"
	"forumaccount/internal/core/domain/user"
	tokenissuance "forumaccount/internal/core/services/token_issuance"
	dbcontent "forumaccount/internal/db/content"
	dbemail "forumaccount/internal/db/email"
	dbuser "forumaccount/internal/db/user"
	contentcache "forumaccount/internal/implementations/content_cache"
	linkbuilder "forumaccount/internal/implementations/link"
	"forumaccount/internal/implementations/logging"
	randomstringgenerator "forumaccount/internal/implementations/random_string_generator"
	ratelimiter "forumaccount/internal/implementations/rate_limiter"
	"forumaccount/internal/metrics"
	"forumaccount/internal/rabbitmq"
	emailqueue "forumaccount/internal/rabbitmq/publishers/email_queue"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection
	Registry *prometheus.Registry

	Now func() time.Time

	UserRepository    user.UserRepository
	ContentRepository content.Repository
	EmailQueue        email.Queue

	RateLimiter     drl.RateLimiter
	TokenGenerator  user.TokenGenerator
	LinkBuilder     link.Builder
	Notifier        tokenissuance.Notifier
	OutcomeRecorder tokenissuance.OutcomeRecorder
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeEmailQueue := deps.initEmailQueue()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ContentRepository = dbcontent.NewPgxRepository(deps.DB)
	if deps.Config.TemplateCacheTTL > 0 {
		deps.ContentRepository = contentcache.New(deps.ContentRepository, deps.Config.TemplateCacheTTL)
	}
	if deps.EmailQueue == nil {
		deps.EmailQueue = dbemail.NewPgxQueue(deps.DB, deps.Now)
	}
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.TokenGenerator = randomstringgenerator.NewGenerator(deps.Config.TokenLength, deps.Now)
	deps.initLinkBuilder()
	deps.initMetrics()
	deps.Notifier = tokenissuance.NewEmailNotifier(
		deps.Logger,
		deps.Config.ForumName,
		deps.ContentRepository,
		deps.LinkBuilder,
		deps.EmailQueue,
	)

	return deps, func() {
		closeFuncs := []func(){
			closeEmailQueue,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

// initEmailQueue sets up the RabbitMQ email queue when it is the configured
// backend. Otherwise emails are stored in PostgreSQL.
func (deps *Deps) initEmailQueue() func() {
	if deps.Config.MailQueueBackend != config.MailQueueRabbitMQ {
		return func() {}
	}

	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection

	rabbitmqChannel, err := rabbitmqConnection.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.RabbitmqEmailQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	deps.EmailQueue = emailqueue.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqEmailQueue,
		func() time.Time { return time.Now().UTC() },
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqChannel.Close()
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initLinkBuilder() {
	baseURL, err := deps.Config.ParseBaseURL()
	if err != nil {
		panic(err)
	}
	deps.LinkBuilder = linkbuilder.NewURLBuilder(baseURL)
}

func (deps *Deps) initMetrics() {
	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(deps.Registry)
	if err != nil {
		panic(fmt.Sprintf("could not register metrics: %v", err))
	}
	deps.OutcomeRecorder = recorder
}
