package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/api/handler"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/api/handler/router"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/scheduler"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/analyzing"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/authenticating"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/delivering"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/segmenting"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	catalogService cataloging.Cataloger,
	analysisService analyzing.Analyzer,
	deliveryService delivering.DeliveryInsighter,
	segmentService segmenting.Segmenter,
	authenticator authenticating.Authenticator,
	metadataRefreshService *scheduler.MetadataRefreshService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MetadataRefreshService: metadataRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Metadata(catalogService)...),
		router.WithRoutes(handler.Sales(analysisService)...),
		router.WithRoutes(handler.Delivery(deliveryService)...),
		router.WithRoutes(handler.Loyalty(segmentService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handlerChain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handlerChain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
