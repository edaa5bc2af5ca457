package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/delivering"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/log"
)

// GetDeliveryTimeSlots retorna o desempenho de entrega por dia da semana
// e hora do dia de uma loja.
func GetDeliveryTimeSlots(service delivering.DeliveryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := storeIDFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("store_id", storeID).Info("delivery: consultando desempenho por horário")

		slots, err := service.PerformanceByTimeSlot(storeID)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar desempenho de entrega por horário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(slots); err != nil {
			logger.WithError(err).Error("delivery: falha ao codificar resposta de horários")
		}
	})
}

// GetDeliveryNeighborhoods retorna os bairros mais lentos de uma loja,
// considerando apenas bairros com volume mínimo de entregas.
func GetDeliveryNeighborhoods(service delivering.DeliveryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := storeIDFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("store_id", storeID).Info("delivery: consultando desempenho por bairro")

		neighborhoods, err := service.PerformanceByNeighborhood(storeID)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar desempenho de entrega por bairro")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(neighborhoods); err != nil {
			logger.WithError(err).Error("delivery: falha ao codificar resposta de bairros")
		}
	})
}

// GetDeliveryOverview retorna o resumo geral de entregas da loja: volume,
// tempo médio e o percentil 90 do tempo de entrega.
func GetDeliveryOverview(service delivering.DeliveryInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := storeIDFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("store_id", storeID).Info("delivery: consultando resumo de entregas")

		overview, err := service.Overview(storeID)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar resumo de entregas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("delivery: falha ao codificar resposta de resumo")
		}
	})
}
