package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/segmenting"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/apiErrors"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/log"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
)

const (
	defaultRecencyThresholdDays = 30
	defaultFrequencyThreshold   = 3
)

// SegmentResponse agrupa os clientes do segmento com o resumo de gasto.
type SegmentResponse struct {
	Customers []domain.CustomerRFM   `json:"customers"`
	Summary   *domain.SegmentSummary `json:"summary"`
}

// GetCustomerBaseFacts retorna a base de clientes com os fatos de RFM
// (recência, frequência e valor monetário) já derivados.
func GetCustomerBaseFacts(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		analysisDate, ok := analysisDateFromRequest(w, r)
		if !ok {
			return
		}

		facts, err := service.BaseFacts(analysisDate)
		if err != nil {
			writeSegmentError(w, logger, err, "Erro ao consultar base de clientes")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(facts); err != nil {
			logger.WithError(err).Error("loyalty: falha ao codificar resposta da base de clientes")
		}
	})
}

// GetChurnRiskSegment retorna os clientes em risco de abandono segundo os
// limiares informados, com o resumo de gasto do segmento.
func GetChurnRiskSegment(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		analysisDate, ok := analysisDateFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		recencyThreshold, err := intQueryParam(query.Get("recency_threshold"), defaultRecencyThresholdDays)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro recency_threshold inválido", nil)
			return
		}

		frequencyThreshold, err := intQueryParam(query.Get("frequency_threshold"), defaultFrequencyThreshold)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro frequency_threshold inválido", nil)
			return
		}

		criteria := domain.SegmentCriteria{
			RecencyThresholdDays: recencyThreshold,
			FrequencyThreshold:   frequencyThreshold,
		}

		logger.WithFields(log.Fields{
			"recency_threshold":   criteria.RecencyThresholdDays,
			"frequency_threshold": criteria.FrequencyThreshold,
			"analysis_date":       analysisDate.Format(time.DateOnly),
		}).Info("loyalty: segmentando clientes em risco")

		customers, summary, err := service.Segment(analysisDate, criteria)
		if err != nil {
			writeSegmentError(w, logger, err, "Erro ao segmentar clientes")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SegmentResponse{Customers: customers, Summary: summary}); err != nil {
			logger.WithError(err).Error("loyalty: falha ao codificar resposta do segmento")
		}
	})
}

// GetFrequencyDistribution retorna a distribuição da base de clientes por
// faixa de frequência de compra.
func GetFrequencyDistribution(service segmenting.Segmenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		analysisDate, ok := analysisDateFromRequest(w, r)
		if !ok {
			return
		}

		buckets, err := service.FrequencyDistribution(analysisDate)
		if err != nil {
			writeSegmentError(w, logger, err, "Erro ao consultar distribuição de frequência")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(buckets); err != nil {
			logger.WithError(err).Error("loyalty: falha ao codificar resposta da distribuição")
		}
	})
}

// analysisDateFromRequest extrai o parâmetro analysis_date, usando a data
// de hoje quando ausente.
func analysisDateFromRequest(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("analysis_date")
	if raw == "" {
		return time.Now(), true
	}

	parsed, err := utils.ParseDate(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro analysis_date inválido", nil)
		return time.Time{}, false
	}

	return *parsed, true
}

func writeSegmentError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, segmenting.ErrInvalidRecencyThreshold):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limiar de recência deve ser maior ou igual a 1", nil)

	case errors.Is(err, segmenting.ErrInvalidFrequencyThreshold):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limiar de frequência deve ser maior ou igual a 1", nil)

	default:
		logger.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
