package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/apiErrors"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/log"
)

// GetStores retorna as lojas ativas com o nome amigável para exibição
// nos filtros do dashboard.
func GetStores(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metadata, err := service.Metadata()
		if err != nil {
			logger.WithError(err).Error("metadata: falha ao carregar lojas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metadata.Stores); err != nil {
			logger.WithError(err).Error("metadata: falha ao codificar resposta de lojas")
		}
	})
}

// GetChannels retorna os canais de venda conhecidos.
func GetChannels(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metadata, err := service.Metadata()
		if err != nil {
			logger.WithError(err).Error("metadata: falha ao carregar canais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar canais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metadata.Channels); err != nil {
			logger.WithError(err).Error("metadata: falha ao codificar resposta de canais")
		}
	})
}
