package main

import (
	"context"
	"log/slog"
	"os"

	"vitrine/config"
	"vitrine/internal/delivery"
	"vitrine/internal/delivery/http"
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/router/handler"
	"vitrine/internal/infra/auth"
	"vitrine/internal/infra/auth/google"
	"vitrine/internal/infra/cache"
	"vitrine/internal/infra/live"
	logs "vitrine/internal/infra/log"
	"vitrine/internal/infra/payment/stripe"
	"vitrine/internal/infra/persistence/postgres"
	"vitrine/internal/infra/pubsub"
	"vitrine/internal/infra/qrcode"
	"vitrine/internal/infra/storage"
	"vitrine/internal/scheduler"
	"vitrine/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewStoreRepository,
			postgres.NewCityRepository,
			postgres.NewAddressRepository,
			postgres.NewCategoryRepository,
			postgres.NewAttributeRepository,
			postgres.NewProductRepository,
			postgres.NewStockRepository,
			postgres.NewOrderRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			qrcode.NewQRCodeService,
			stripe.NewClient,
			storage.NewImageStorage,
			cache.NewCatalogCache,
			live.NewHub,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewStoreService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewBillingService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStoreHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewBillingHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewSweeper,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
