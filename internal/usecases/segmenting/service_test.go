package segmenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestRecencyDays(t *testing.T) {
	tests := []struct {
		name         string
		analysisDate time.Time
		lastSale     time.Time
		expected     int
	}{
		{
			name:         "um mês de distância conta os dias de calendário",
			analysisDate: day(2024, 6, 1),
			lastSale:     day(2024, 5, 1),
			expected:     31,
		},
		{
			name:         "compra no próprio dia tem recência zero",
			analysisDate: day(2024, 6, 1),
			lastSale:     day(2024, 6, 1),
			expected:     0,
		},
		{
			name:         "horário da última compra é ignorado",
			analysisDate: day(2024, 6, 2),
			lastSale:     time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC),
			expected:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecencyDays(tt.analysisDate, tt.lastSale))
		})
	}
}

func TestFilterSegment(t *testing.T) {
	facts := []domain.CustomerRFM{
		{CustomerID: 1, RecencyDays: 31, Frequency: 5, Monetary: 200},
		{CustomerID: 2, RecencyDays: 30, Frequency: 5, Monetary: 900}, // recência no limiar, fora
		{CustomerID: 3, RecencyDays: 45, Frequency: 2, Monetary: 500}, // frequência abaixo, fora
		{CustomerID: 4, RecencyDays: 45, Frequency: 3, Monetary: 800}, // frequência no limiar, dentro
		{CustomerID: 5, RecencyDays: 90, Frequency: 12, Monetary: 350},
	}

	criteria := domain.SegmentCriteria{RecencyThresholdDays: 30, FrequencyThreshold: 3}

	segment := FilterSegment(facts, criteria)

	require.Len(t, segment, 3)

	// Recência estritamente maior que o limiar e frequência >= limiar
	ids := []int64{segment[0].CustomerID, segment[1].CustomerID, segment[2].CustomerID}
	assert.Equal(t, []int64{4, 5, 1}, ids, "segmento deve vir ordenado pelo gasto, do maior para o menor")
}

func TestFilterSegment_SemClientesElegiveis(t *testing.T) {
	facts := []domain.CustomerRFM{
		{CustomerID: 1, RecencyDays: 5, Frequency: 8, Monetary: 400},
	}

	segment := FilterSegment(facts, domain.SegmentCriteria{RecencyThresholdDays: 30, FrequencyThreshold: 3})

	assert.NotNil(t, segment)
	assert.Empty(t, segment)
}

func TestBucketByFrequency(t *testing.T) {
	facts := []domain.CustomerRFM{
		{CustomerID: 1, Frequency: 1},
		{CustomerID: 2, Frequency: 3},  // fronteira: ainda ocasional
		{CustomerID: 3, Frequency: 4},  // fronteira: já leal
		{CustomerID: 4, Frequency: 10}, // fronteira: ainda leal
		{CustomerID: 5, Frequency: 11}, // fronteira: já VIP
		{CustomerID: 6, Frequency: 37},
	}

	buckets := BucketByFrequency(facts)

	require.Len(t, buckets, 3)

	assert.Equal(t, "1-3x (Novos/Ocasionais)", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)

	assert.Equal(t, "4-10x (Leais)", buckets[1].Label)
	assert.Equal(t, 2, buckets[1].Count)

	assert.Equal(t, "10+x (Melhores/VIP)", buckets[2].Label)
	assert.Equal(t, 2, buckets[2].Count)

	total := buckets[0].Count + buckets[1].Count + buckets[2].Count
	assert.Equal(t, len(facts), total, "todo cliente deve cair em exatamente uma faixa")
}

func TestSummarizeMonetary(t *testing.T) {
	segment := []domain.CustomerRFM{
		{Monetary: 100},
		{Monetary: 200},
		{Monetary: 300},
		{Monetary: 400},
	}

	summary := SummarizeMonetary(segment)

	require.NotNil(t, summary)
	assert.Equal(t, 4, summary.Customers)
	assert.Equal(t, 250.0, summary.MonetaryMean)
	assert.Equal(t, 250.0, summary.MonetaryMedian)
}

func TestSummarizeMonetary_SegmentoVazio(t *testing.T) {
	summary := SummarizeMonetary(nil)

	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Customers)
	assert.Zero(t, summary.MonetaryMean)
	assert.Zero(t, summary.MonetaryMedian)
}

func TestService_Segment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRFMRepository(ctrl)
	service := NewService(mockRepo)

	analysisDate := day(2024, 6, 1)

	mockRepo.EXPECT().
		CustomerSummaries().
		Return([]domain.CustomerSummary{
			{CustomerID: 1, CustomerName: "Ana", LastSaleDate: day(2024, 4, 1), Frequency: 6, Monetary: 450},
			{CustomerID: 2, CustomerName: "Bruno", LastSaleDate: day(2024, 5, 25), Frequency: 9, Monetary: 900},
		}, nil)

	customers, summary, err := service.Segment(analysisDate, domain.SegmentCriteria{
		RecencyThresholdDays: 30,
		FrequencyThreshold:   3,
	})

	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(1), customers[0].CustomerID)
	assert.Equal(t, 61, customers[0].RecencyDays)

	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Customers)
	assert.Equal(t, 450.0, summary.MonetaryMean)
}

func TestService_Segment_LimiaresInvalidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRFMRepository(ctrl)
	service := NewService(mockRepo)

	_, _, err := service.Segment(day(2024, 6, 1), domain.SegmentCriteria{
		RecencyThresholdDays: 0,
		FrequencyThreshold:   3,
	})
	assert.ErrorIs(t, err, ErrInvalidRecencyThreshold)

	_, _, err = service.Segment(day(2024, 6, 1), domain.SegmentCriteria{
		RecencyThresholdDays: 30,
		FrequencyThreshold:   0,
	})
	assert.ErrorIs(t, err, ErrInvalidFrequencyThreshold)
}

func TestService_BaseFacts_OrdenadoPorRecencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomerRFMRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		CustomerSummaries().
		Return([]domain.CustomerSummary{
			{CustomerID: 10, LastSaleDate: day(2024, 1, 1), Frequency: 2, Monetary: 50},
			{CustomerID: 20, LastSaleDate: day(2024, 5, 30), Frequency: 4, Monetary: 120},
		}, nil)

	facts, err := service.BaseFacts(day(2024, 6, 1))

	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, int64(20), facts[0].CustomerID, "cliente mais recente vem primeiro")
	assert.Equal(t, int64(10), facts[1].CustomerID)
}
