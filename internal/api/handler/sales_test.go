package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/analyzing"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestGetTicketAverageByChannel_PeriodoObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada: a requisição deve ser
	// rejeitada antes de montar a consulta.
	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	handler := GetTicketAverageByChannel(analyzing.NewService(mockRepo))

	tests := []struct {
		name   string
		target string
	}{
		{
			name:   "sem start_date",
			target: "/v1/sales/ticket-average/by-channel?end_date=2024-06-30",
		},
		{
			name:   "sem end_date",
			target: "/v1/sales/ticket-average/by-channel?start_date=2024-06-01",
		},
		{
			name:   "sem nenhuma data",
			target: "/v1/sales/ticket-average/by-channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetTicketAverageByStore_PeriodoObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	handler := GetTicketAverageByStore(analyzing.NewService(mockRepo))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sales/ticket-average/by-store", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestGetTicketAverageByChannel_PeriodoValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	handler := GetTicketAverageByChannel(analyzing.NewService(mockRepo))

	mockRepo.EXPECT().
		TicketAverageByChannel(gomock.Any()).
		Return([]domain.ChannelTicketAverage{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/sales/ticket-average/by-channel?start_date=2024-06-01&end_date=2024-06-30", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTicketAverageByChannel_DataMalformada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	handler := GetTicketAverageByChannel(analyzing.NewService(mockRepo))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/sales/ticket-average/by-channel?start_date=junho&end_date=2024-06-30", nil)

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}
