package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/api"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/scheduler"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/analyzing"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/authenticating"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/delivering"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/segmenting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metadataRepo := repository.NewMetadataRepository(pgConn)
	salesRepo := repository.NewSalesMetricsRepository(pgConn)
	deliveryRepo := repository.NewDeliveryMetricsRepository(pgConn)
	rfmRepo := repository.NewCustomerRFMRepository(pgConn)
	operatorRepo := repository.NewOperatorRepository(pgConn)

	queryCache := cache.New()
	defer queryCache.Close()

	catalogService := cataloging.NewService(metadataRepo).WithCache(queryCache, cfg.Cache.MetadataTTL)
	analysisService := analyzing.NewService(salesRepo).WithCache(queryCache, cfg.Cache.QueryTTL)
	deliveryService := delivering.NewService(deliveryRepo).WithCache(queryCache, cfg.Cache.QueryTTL)
	segmentService := segmenting.NewService(rfmRepo).WithCache(queryCache, cfg.Cache.RFMTTL)
	authenticator := authenticating.NewService(operatorRepo, cfg)

	metadataRefreshService := scheduler.NewMetadataRefreshService(catalogService, cfg)

	if err := metadataRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de metadados")
	} else {
		logrus.Info("Agendador de atualização de metadados iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		catalogService,
		analysisService,
		deliveryService,
		segmentService,
		authenticator,
		metadataRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
