package handler

import (
	"net/http"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/api/handler/router"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/analyzing"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/authenticating"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/delivering"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/segmenting"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/operators/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Metadata(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metadata/stores",
			Method:      http.MethodGet,
			Handler:     GetStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/metadata/channels",
			Method:      http.MethodGet,
			Handler:     GetChannels(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/sales/ticket-average/by-channel",
			Method:      http.MethodGet,
			Handler:     GetTicketAverageByChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/sales/ticket-average/by-store",
			Method:      http.MethodGet,
			Handler:     GetTicketAverageByStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/stores/:id/margin-ranking",
			Method:      http.MethodGet,
			Handler:     GetMarginRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
	}
}

func Delivery(service delivering.DeliveryInsighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/delivery/time-slots",
			Method:      http.MethodGet,
			Handler:     GetDeliveryTimeSlots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/stores/:id/delivery/neighborhoods",
			Method:      http.MethodGet,
			Handler:     GetDeliveryNeighborhoods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/stores/:id/delivery/overview",
			Method:      http.MethodGet,
			Handler:     GetDeliveryOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
	}
}

func Loyalty(service segmenting.Segmenter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/loyalty/rfm",
			Method:      http.MethodGet,
			Handler:     GetCustomerBaseFacts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/loyalty/segment",
			Method:      http.MethodGet,
			Handler:     GetChurnRiskSegment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
		{
			Path:        "/v1/loyalty/frequency-distribution",
			Method:      http.MethodGet,
			Handler:     GetFrequencyDistribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AnyOperator()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/metadata/run",
			Method:      http.MethodPost,
			Handler:     RunMetadataRefresh(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
