package main

import (
	"context"
	"log/slog"
	"os"

	"inspection/config"
	"inspection/internal/delivery"
	"inspection/internal/delivery/api"
	"inspection/internal/delivery/api/middleware"
	"inspection/internal/delivery/api/router/handler"
	"inspection/internal/infra/auth"
	logs "inspection/internal/infra/log"
	"inspection/internal/infra/metrics"
	"inspection/internal/infra/persistence/postgres"
	"inspection/internal/infra/ratelimit"
	"inspection/internal/usecase"
	"inspection/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		ratelimit.NewCounterStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewRolePolicies,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPlatformResolver,
			ratelimit.NewTieredLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialValidator,
			impl.NewDeviceBindingValidator,
			fx.Annotate(
				impl.NewSessionRecorder,
				fx.As(new(usecase.SessionRecorder)),
			),
			impl.NewSessionService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
