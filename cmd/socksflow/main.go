package main

import (
	"context"
	"log/slog"
	"os"

	"socksflow/config"
	"socksflow/internal/delivery"
	"socksflow/internal/delivery/web"
	webmiddleware "socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/router/handler"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/infra/apiclient"
	"socksflow/internal/infra/auth"
	logs "socksflow/internal/infra/log"
	"socksflow/internal/infra/pubsub"
	"socksflow/internal/infra/qrcode"
	"socksflow/internal/session"
	"socksflow/internal/usecase/impl"

	"github.com/shopspring/decimal"
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
		injectDomain(),
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

func injectDomain() fx.Option {
	return fx.Provide(
		newCatalog,
		newRequirements,
		newNavigationRules,
		newTracker,
	)
}

// newCatalog builds the plan catalogue from configuration, falling back to the built-in one.
func newCatalog(cfg *config.Config) (entity.Catalog, error) {
	if len(cfg.Plans) == 0 {
		return entity.DefaultCatalog(), nil
	}

	catalog := make(entity.Catalog, 0, len(cfg.Plans))
	for _, p := range cfg.Plans {
		price, err := decimal.NewFromString(p.PriceMonthly)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid price for plan %s", p.Code)
		}
		catalog = append(catalog, entity.Plan{
			Code:          p.Code,
			Name:          p.Name,
			PriceMonthly:  price,
			Currency:      p.Currency,
			PairsPerMonth: p.PairsPerMonth,
			Description:   p.Description,
			Features:      p.Features,
		})
	}

	return catalog, nil
}

func newRequirements(cfg *config.Config) (profile.Requirements, error) {
	return profile.ParseRequirements(cfg.Profile.RequiredFields)
}

// newNavigationRules overlays configured prefixes on the default rules.
func newNavigationRules(cfg *config.Config) navigation.Rules {
	rules := navigation.DefaultRules()
	nav := cfg.Navigation
	if len(nav.Protected) > 0 {
		rules.Protected = nav.Protected
	}
	if len(nav.AuthOnly) > 0 {
		rules.AuthOnly = nav.AuthOnly
	}
	if nav.LoginPath != "" {
		rules.LoginPath = nav.LoginPath
	}
	if navigation.IsRelativeTarget(nav.DefaultTarget) {
		rules.DefaultTarget = nav.DefaultTarget
	}

	return rules
}

func newTracker(cfg *config.Config) *mutation.Tracker {
	return mutation.NewTracker(cfg.Session.MutationRetention)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			apiclient.NewClient,
			func(c *apiclient.Client) service.AuthService { return c },
			func(c *apiclient.Client) service.AddressService { return c },
			func(c *apiclient.Client) service.SubscriptionService { return c },
			func(c *apiclient.Client) service.OrderService { return c },
			auth.NewJWTFlashCodec,
			newQRCodeService,
			session.NewManager,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewIntentService,
			impl.NewOnboardingService,
			impl.NewSubscriptionService,
			impl.NewOrderService,
			impl.NewAddressService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			webmiddleware.NewSessionMiddleware,
			webmiddleware.NewFlashMiddleware,
			webmiddleware.NewNavigationGuard,
			webmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewRenderer,
			handler.NewPageHandler,
			handler.NewAuthHandler,
			handler.NewOnboardingHandler,
			handler.NewDashboardHandler,
			handler.NewSubscriptionHandler,
			handler.NewOrderHandler,
			handler.NewAddressHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
