// Package scheduler contém o agendamento de tarefas recorrentes do serviço.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
	"github.com/sirupsen/logrus"
)

type MetadataRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// MetadataRefreshService recarrega os metadados (lojas e canais) uma vez
// por dia, mantendo o cache dos filtros quente para o primeiro acesso da
// manhã.
type MetadataRefreshService struct {
	scheduler          *gocron.Scheduler
	catalogService     cataloging.Cataloger
	config             MetadataRefreshConfig
	running            bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunError       string
}

type MetadataRefreshStatus struct {
	Enabled            bool      `json:"enabled"`
	CronSchedule       string    `json:"cron_schedule"`
	Running            bool      `json:"running"`
	LastRunStartedAt   time.Time `json:"last_run_started_at"`
	LastRunCompletedAt time.Time `json:"last_run_completed_at"`
	LastRunError       string    `json:"last_run_error,omitempty"`
}

func NewMetadataRefreshService(
	catalogService cataloging.Cataloger,
	cfg *config.Config,
) *MetadataRefreshService {
	refreshConfig := MetadataRefreshConfig{
		CronSchedule: cfg.MetadataRefresh.CronSchedule,
		Enabled:      cfg.MetadataRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de metadados carregada")

	return &MetadataRefreshService{
		scheduler:      gocron.NewScheduler(time.Local),
		catalogService: catalogService,
		config:         refreshConfig,
	}
}

func (s *MetadataRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização de metadados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de metadados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Run(); err != nil {
			logrus.WithError(err).Error("Erro na atualização de metadados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de metadados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de metadados")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma atualização imediata, ignorando o agendamento.
// Execuções concorrentes são descartadas.
func (s *MetadataRefreshService) Run() error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Atualização de metadados já está em execução")
		return nil
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de metadados")

	metadata, err := s.catalogService.Refresh()

	s.runMutex.Lock()
	if err != nil {
		s.lastRunError = err.Error()
	} else {
		s.lastRunError = ""
	}
	s.runMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"stores":   len(metadata.Stores),
		"channels": len(metadata.Channels),
	}).Info("Atualização de metadados concluída")

	return nil
}

func (s *MetadataRefreshService) Status() MetadataRefreshStatus {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return MetadataRefreshStatus{
		Enabled:            s.config.Enabled,
		CronSchedule:       s.config.CronSchedule,
		Running:            s.running,
		LastRunStartedAt:   s.lastRunStartedAt,
		LastRunCompletedAt: s.lastRunCompletedAt,
		LastRunError:       s.lastRunError,
	}
}
