package protocal

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"meal-order-client/configs"
	httpAdapter "meal-order-client/internal/adapters/input/http"
	"meal-order-client/internal/adapters/output/memory"
	"meal-order-client/internal/adapters/output/postgres"
	redisAdapter "meal-order-client/internal/adapters/output/redis"
	"meal-order-client/internal/adapters/output/remote"
	"meal-order-client/internal/application"
	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/output"
	"meal-order-client/pkg/database_driver/gorm"
	"meal-order-client/pkg/database_driver/redis"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// sessionBackend is the opened session store plus what the server needs to
// check and release it
type sessionBackend struct {
	store output.SessionStore
	ping  func(ctx context.Context) error
	close func()
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logrus.Info(conf.Env)

	if conf.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	location, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		logrus.Warnf("Unknown timezone %q, falling back to local time: %v", conf.Timezone, err)
		location = time.Local
	}

	backend, err := openSessionBackend(conf)
	if err != nil {
		return err
	}

	// Wire up the hexagonal architecture layers
	// Application service (session state machine)
	guard := application.NewSessionGuard(backend.store)
	if err := guard.Restore(context.Background()); err != nil {
		logrus.Errorf("Failed to restore session, starting anonymous: %v", err)
	}
	// Audit only; views learn of it from the 401 envelope's redirect field
	guard.OnForcedRedirect(func(decision domain.Decision) {
		logrus.Infof("Session invalidated by the meal backend; the next protected call answers 401 with redirect %s", decision.Location)
	})

	// Output adapter (meal backend); a 401 anywhere ends the session
	mealClient, err := remote.NewMealClientAdapter(conf.Remote, location, guard.UnauthorizedResponse)
	if err != nil {
		backend.close()
		return err
	}

	// Application services (use cases)
	exclusionSrv := application.NewExclusionService(mealClient, guard, location)
	orderSrv := application.NewOrderService(mealClient, guard, location)
	accountSrv := application.NewAccountService(mealClient, guard, location)

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(guard, exclusionSrv, orderSrv, accountSrv, location)
	if backend.ping != nil {
		hdl.WithPing(backend.ping)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	hdl.RegisterRoutes(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			backend.close()
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

// openSessionBackend connects the session store chosen by session.backend
func openSessionBackend(conf *configs.Config) (*sessionBackend, error) {
	switch conf.Session.Backend {
	case configs.SessionBackendRedis:
		client, err := redis.ConnectToRedis(conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, err
		}
		store, err := redisAdapter.NewRedisSessionStore(client.Client, conf.Session.Namespace)
		if err != nil {
			redis.DisconnectRedis(client)
			return nil, err
		}
		return &sessionBackend{
			store: store,
			ping:  func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: func() { redis.DisconnectRedis(client) },
		}, nil

	case configs.SessionBackendPostgres:
		dbConGorm, err := gorm.ConnectToPostgreSQL(
			conf.Postgres.Host,
			conf.Postgres.Port,
			conf.Postgres.Username,
			conf.Postgres.Password,
			conf.Postgres.DbName,
			conf.Postgres.SSLMode,
		)
		if err != nil {
			return nil, err
		}
		store, err := postgres.NewSessionStore(dbConGorm.Postgres, conf.Session.Namespace)
		if err != nil {
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			return nil, err
		}
		return &sessionBackend{
			store: store,
			ping: func(ctx context.Context) error {
				sqlDB, err := dbConGorm.Postgres.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			close: func() { gorm.DisconnectPostgres(dbConGorm.Postgres) },
		}, nil

	case configs.SessionBackendMemory, "":
		return &sessionBackend{
			store: memory.NewMemorySessionStore(),
			close: func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", conf.Session.Backend)
	}
}
