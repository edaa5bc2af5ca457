package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/analyzing"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/apiErrors"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/log"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
)

const (
	defaultHourMin = 0
	defaultHourMax = 23
)

// GetTopProducts retorna os dez produtos mais vendidos de uma loja em um
// canal, dia da semana e janela de horário.
func GetTopProducts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := storeIDFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		dayOfWeek, err := intQueryParam(query.Get("day_of_week"), -1)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro day_of_week inválido", nil)
			return
		}

		hourMin, err := intQueryParam(query.Get("hour_min"), defaultHourMin)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro hour_min inválido", nil)
			return
		}

		hourMax, err := intQueryParam(query.Get("hour_max"), defaultHourMax)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro hour_max inválido", nil)
			return
		}

		filters := domain.TopProductFilters{
			StoreID:     storeID,
			ChannelName: query.Get("channel"),
			DayOfWeek:   dayOfWeek,
			HourMin:     hourMin,
			HourMax:     hourMax,
		}

		logger.WithFields(log.Fields{
			"store_id":    storeID,
			"channel":     filters.ChannelName,
			"day_of_week": filters.DayOfWeek,
		}).Info("sales: consultando top produtos")

		products, err := service.TopProducts(filters)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar top produtos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("sales: falha ao codificar resposta de top produtos")
		}
	})
}

// GetTicketAverageByChannel retorna o ticket médio diário por canal no período.
func GetTicketAverageByChannel(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"start_date": period.Start.Format(time.DateOnly),
			"end_date":   period.End.Format(time.DateOnly),
		}).Info("sales: consultando ticket médio por canal")

		averages, err := service.TicketAverageByChannel(period)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar ticket médio por canal")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(averages); err != nil {
			logger.WithError(err).Error("sales: falha ao codificar resposta de ticket por canal")
		}
	})
}

// GetTicketAverageByStore retorna o ticket médio por loja no período,
// calculado como a média das médias diárias de cada loja.
func GetTicketAverageByStore(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, ok := periodFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"start_date": period.Start.Format(time.DateOnly),
			"end_date":   period.End.Format(time.DateOnly),
		}).Info("sales: consultando ticket médio por loja")

		averages, err := service.TicketAverageByStore(period)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar ticket médio por loja")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(averages); err != nil {
			logger.WithError(err).Error("sales: falha ao codificar resposta de ticket por loja")
		}
	})
}

// GetMarginRanking retorna os produtos da loja ordenados pela margem
// estimada, do pior para o melhor.
func GetMarginRanking(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID, ok := storeIDFromRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("store_id", storeID).Info("sales: consultando ranking de margem")

		margins, err := service.MarginRanking(storeID)
		if err != nil {
			writeAnalysisError(w, logger, err, "Erro ao consultar ranking de margem")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(margins); err != nil {
			logger.WithError(err).Error("sales: falha ao codificar resposta de ranking de margem")
		}
	})
}

// storeIDFromRequest extrai e valida o parâmetro :id da URL.
func storeIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
		return 0, false
	}

	storeID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
		return 0, false
	}

	return storeID, true
}

// periodFromRequest extrai start_date e end_date da query string.
// Datas ausentes são rejeitadas: sem elas a consulta degeneraria para um
// período vazio indistinguível de um resultado genuinamente vazio.
func periodFromRequest(w http.ResponseWriter, r *http.Request) (domain.DateRange, bool) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if rawStart == "" || rawEnd == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
		return domain.DateRange{}, false
	}

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
		return domain.DateRange{}, false
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
		return domain.DateRange{}, false
	}

	return domain.DateRange{Start: *startDate, End: *endDate}, true
}

func intQueryParam(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// writeAnalysisError traduz os erros de validação do serviço de análise
// para as respostas padronizadas da API.
func writeAnalysisError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, analyzing.ErrMissingChannel):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro channel é obrigatório", nil)

	case errors.Is(err, analyzing.ErrInvalidDayOfWeek):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro day_of_week deve estar entre 0 e 6", nil)

	case errors.Is(err, analyzing.ErrInvalidHourWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Janela de horário inválida", nil)

	case errors.Is(err, analyzing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período de análise inválido", nil)

	default:
		logger.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
