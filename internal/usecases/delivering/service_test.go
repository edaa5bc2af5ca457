package delivering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

func TestPercentileCont(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		fraction float64
		expected float64
	}{
		{
			name:     "entrada vazia retorna zero",
			values:   nil,
			fraction: 0.9,
			expected: 0,
		},
		{
			name:     "valor único é o próprio percentil",
			values:   []float64{42},
			fraction: 0.9,
			expected: 42,
		},
		{
			name:     "durações idênticas retornam a própria duração",
			values:   []float64{30, 30, 30, 30},
			fraction: 0.9,
			expected: 30,
		},
		{
			name:     "mediana de quatro valores interpola",
			values:   []float64{10, 20, 30, 40},
			fraction: 0.5,
			expected: 25,
		},
		{
			name:     "p90 interpola entre os dois maiores",
			values:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			fraction: 0.9,
			expected: 91,
		},
		{
			name:     "entrada fora de ordem é ordenada antes",
			values:   []float64{40, 10, 30, 20},
			fraction: 0.5,
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PercentileCont(tt.values, tt.fraction), 0.0001)
		})
	}
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryMetricsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		CompletedDeliveryMinutes(int64(3)).
		Return([]float64{20, 30, 40, 50}, nil)

	overview, err := service.Overview(3)

	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, 4, overview.DeliveryCount)
	assert.Equal(t, 35.0, overview.AvgDeliveryMinutes)
	assert.Equal(t, 47.0, overview.P90DeliveryMinutes)
}

func TestService_Overview_SemEntregas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryMetricsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		CompletedDeliveryMinutes(int64(9)).
		Return([]float64{}, nil)

	overview, err := service.Overview(9)

	require.NoError(t, err)
	require.NotNil(t, overview)
	assert.Equal(t, 0, overview.DeliveryCount)
	assert.Zero(t, overview.AvgDeliveryMinutes)
	assert.Zero(t, overview.P90DeliveryMinutes)
}

func TestService_PerformanceByNeighborhood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryMetricsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		PerformanceByNeighborhood(int64(3)).
		Return([]domain.NeighborhoodPerformance{
			{Neighborhood: "Vila Madalena", DeliveryCount: 54, AvgDeliveryMinutes: 48.2, P90DeliveryMinutes: 71.5},
			{Neighborhood: "Pinheiros", DeliveryCount: 120, AvgDeliveryMinutes: 32.7, P90DeliveryMinutes: 49.0},
		}, nil)

	neighborhoods, err := service.PerformanceByNeighborhood(3)

	require.NoError(t, err)
	require.Len(t, neighborhoods, 2)
	assert.Equal(t, "Vila Madalena", neighborhoods[0].Neighborhood)
}
