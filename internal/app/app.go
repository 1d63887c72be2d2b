package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/cit-vouchers/internal/config"
	"github.com/fsdevblog/cit-vouchers/internal/repository/pgrepo"
	"github.com/fsdevblog/cit-vouchers/internal/repository/redisrepo"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/service/psswd"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api"
	"github.com/fsdevblog/cit-vouchers/internal/transport/events"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// publisher издатель событий об оплаченных заказах, который нужно закрыть при остановке.
type publisher interface {
	service.EventPublisher
	Close() error
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":      a.Config.RunAddress,
		"gateway":      a.Config.GatewayBaseURL,
		"releaseMode":  a.Config.ReleaseMode,
		"failOpen":     a.Config.GatewayFailOpen,
		"redisEnabled": a.Config.RedisAddr != "",
		"kafkaEnabled": len(a.Config.KafkaBrokers) > 0,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
		MaxConns:      a.Config.DatabaseMaxConns,
		PingTimeout:   a.Config.DatabaseConnectTTL,
	}, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	pub, pubErr := a.initPublisher(notifyCtx)
	if pubErr != nil {
		return fmt.Errorf("app run: %s", pubErr.Error())
	}
	defer func() {
		if err := pub.Close(); err != nil {
			a.Logger.WithError(err).Warn("close event publisher")
		}
	}()

	gatewayClient := client.New(a.Config.GatewayBaseURL, a.Config.GatewayAccessToken).
		SetTimeout(a.Config.GatewayTimeout)

	policy := service.FailOpen
	if !a.Config.GatewayFailOpen {
		policy = service.FailClosed
	}

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:           unitOfWork,
		JWTSecret:     []byte(a.Config.JWTSecret),
		Hasher:        psswd.New(a.Config.BcryptCost),
		Gateway:       gatewayClient,
		Publisher:     pub,
		FailurePolicy: policy,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if err := a.seed(notifyCtx, services); err != nil {
		return fmt.Errorf("app run: %s", err.Error())
	}

	dedup, closeDedup, dedupErr := a.initDedup(notifyCtx)
	if dedupErr != nil {
		return fmt.Errorf("app run: %s", dedupErr.Error())
	}
	defer closeDedup()

	verifier := client.NewSignatureVerifier(a.Config.WebhookSecret)
	if !verifier.Enabled() {
		a.Logger.Warn("webhook secret is not configured, gateway notifications are accepted without signature")
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		UserService:      services.UserService,
		VoucherService:   services.VoucherService,
		OrderService:     services.OrderService,
		PaymentService:   services.PaymentService,
		Reconciler:       services.Reconciler,
		CompanyService:   services.CompanyService,
		DashboardService: services.DashboardService,
		Verifier:         verifier,
		Dedup:            dedup,
		DB:               conn,
		JWTSecretKey:     []byte(a.Config.JWTSecret),
		GatewayPublicKey: a.Config.GatewayPublicKey,
		AllowOrigins:     a.Config.FrontendURL,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: a.Config.ReadHeaderTimeout,
		WriteTimeout:      a.Config.WriteTimeout,
	}

	g, gCtx := errgroup.WithContext(notifyCtx)

	g.Go(func() error {
		a.Logger.Infof("listening on %s", a.Config.RunAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), a.Config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if !a.Config.PollerDisabled {
		processor := gateway.NewProcessor(services.Reconciler, gatewayClient, a.Logger).
			SetWorkers(a.Config.PollerWorkers).
			SetLimitPerIteration(a.Config.PollerLimit).
			SetPollInterval(a.Config.PollerInterval)

		g.Go(func() error {
			processor.Run(gCtx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

func (a *App) seed(ctx context.Context, services *service.AppServices) error {
	created, err := services.VoucherService.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed vouchers: %w", err)
	}
	if created > 0 {
		a.Logger.Infof("seeded %d default vouchers", created)
	}

	if a.Config.AdminEmail == "" || a.Config.AdminPassword == "" {
		return nil
	}
	adminCreated, adminErr := services.UserService.EnsureAdmin(ctx, service.EnsureAdminArgs{
		Name:     a.Config.AdminName,
		Email:    a.Config.AdminEmail,
		Password: a.Config.AdminPassword,
	})
	if adminErr != nil {
		return fmt.Errorf("ensure admin: %w", adminErr)
	}
	if adminCreated {
		a.Logger.WithField("email", a.Config.AdminEmail).Info("admin user created")
	}
	return nil
}

// initPublisher без брокеров события не публикуются.
func (a *App) initPublisher(ctx context.Context) (publisher, error) {
	if len(a.Config.KafkaBrokers) == 0 {
		return events.NoopPublisher{}, nil
	}
	producer, err := events.NewProducer(ctx, a.Config.KafkaBrokers, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init event producer: %w", err)
	}
	return producer, nil
}

// initDedup без redis повторные уведомления отсекаются только идемпотентностью сверки.
func (a *App) initDedup(ctx context.Context) (api.WebhookDeduplicator, func(), error) {
	if a.Config.RedisAddr == "" {
		a.Logger.Warn("redis is not configured, webhook deduplication is disabled")
		return redisrepo.NoopDedup{}, func() {}, nil
	}

	rdb, err := redisrepo.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis: %w", err)
	}
	closeFn := func() {
		if closeErr := rdb.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close redis client")
		}
	}
	return redisrepo.NewWebhookDedup(rdb, a.Config.WebhookDedupTTL), closeFn, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.VoucherRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewVoucherRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
		repoargs.CompanyRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCompanyRepository(dbtx)
		},
	}

	for name, fn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), fn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
