package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"

	"github.com/fsdevblog/groupsplit/internal/currency"

	"github.com/fsdevblog/groupsplit/pkg/uow"

	"github.com/fsdevblog/groupsplit/internal/config"
	"github.com/fsdevblog/groupsplit/internal/repository/pgrepo"
	"github.com/fsdevblog/groupsplit/internal/service"
	"github.com/fsdevblog/groupsplit/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
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

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	ratesClient := currency.NewHTTPClient(a.Config.RatesAPIAddress)
	rateCache := currency.NewRateCache(ratesClient, currency.DefaultRatesTTL)

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		GroupService:    services.GroupService,
		ExpenseService:  services.ExpenseService,
		PaymentService:  services.PaymentService,
		BalanceService:  services.BalanceService,
		CurrencyService: rateCache,
		JWTSecretKey:    []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	repos := map[repoargs.RepositoryName]func(dbtx uow.DBTX) uow.Repository{
		repoargs.UserRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.GroupRepoName:   func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewGroupRepository(dbtx) },
		repoargs.ExpenseRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewExpenseRepository(dbtx) },
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPaymentRepository(dbtx) },
		repoargs.BalanceRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewBalanceRepository(dbtx) },
	}
	for name, factoryFn := range repos {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
