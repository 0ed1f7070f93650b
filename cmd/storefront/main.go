package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/http"
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/api"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/auth/google"
	"marketplace/internal/infra/geocoding"
	"marketplace/internal/infra/geolocation"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/blobstore"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/store"
	"marketplace/internal/usecase/impl"

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
		fx.Annotate(
			blobstore.New,
			fx.As(new(service.StateStorage)),
		),
		store.New,
		func(s *store.Store) api.TokenProvider { return s },
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthRepository,
			api.NewUserRepository,
			api.NewVendorRepository,
			api.NewCartRepository,
			api.NewProductRepository,
			api.NewWishlistRepository,
			api.NewOrderRepository,
			api.NewCategoryRepository,
			api.NewAdminRepository,
			api.NewAddressRepository,
			api.NewDeviceSessionRepository,
			api.NewInboxRepository,
			api.NewNotificationRepository,
			api.NewKYCRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			google.NewOAuthService,
			qrcode.NewFromConfig,
			geocoding.New,
			geolocation.NewFeed,
			func(feed *geolocation.Feed) service.PositionSource { return feed },
			func(feed *geolocation.Feed) handler.PositionPublisher { return feed },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewVendorDirectoryService,
			impl.NewLocationSampler,
			impl.NewKYCService,
			impl.NewOrderService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewSearchHistoryService,
			impl.NewAddressService,
			impl.NewDeviceSessionService,
			impl.NewInboxService,
			impl.NewNotificationService,
			impl.NewUserAdminService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewAccountHandler,
			handler.NewMessagingHandler,
			handler.NewKYCHandler,
			handler.NewAdminHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
