package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/scheduler"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/apiErrors"
)

// CronJobServices contém os serviços agendados que podem ser disparados
// manualmente pela API.
type CronJobServices struct {
	MetadataRefreshService *scheduler.MetadataRefreshService
}

// RunMetadataRefresh dispara manualmente a atualização de metadados,
// sem esperar pela conclusão.
func RunMetadataRefresh(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.MetadataRefreshService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de metadados não disponível", nil)
			return
		}

		go func() {
			if err := services.MetadataRefreshService.Run(); err != nil {
				logrus.WithError(err).Error("Erro na atualização manual de metadados")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
		})
	}
}

// GetCronStatus retorna o estado da última execução agendada.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.MetadataRefreshService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de metadados não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(services.MetadataRefreshService.Status()); err != nil {
			logrus.WithError(err).Error("Erro ao codificar status das cron jobs")
		}
	}
}
