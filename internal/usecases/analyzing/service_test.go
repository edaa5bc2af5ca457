package analyzing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

func TestService_TopProducts_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		filters  domain.TopProductFilters
		expected error
	}{
		{
			name:     "canal ausente",
			filters:  domain.TopProductFilters{StoreID: 1, DayOfWeek: 3, HourMin: 11, HourMax: 14},
			expected: ErrMissingChannel,
		},
		{
			name:     "dia da semana acima do intervalo",
			filters:  domain.TopProductFilters{StoreID: 1, ChannelName: "iFood", DayOfWeek: 7, HourMin: 11, HourMax: 14},
			expected: ErrInvalidDayOfWeek,
		},
		{
			name:     "dia da semana negativo",
			filters:  domain.TopProductFilters{StoreID: 1, ChannelName: "iFood", DayOfWeek: -1, HourMin: 11, HourMax: 14},
			expected: ErrInvalidDayOfWeek,
		},
		{
			name:     "hora mínima maior que a máxima",
			filters:  domain.TopProductFilters{StoreID: 1, ChannelName: "iFood", DayOfWeek: 5, HourMin: 20, HourMax: 11},
			expected: ErrInvalidHourWindow,
		},
		{
			name:     "hora máxima acima de 23",
			filters:  domain.TopProductFilters{StoreID: 1, ChannelName: "iFood", DayOfWeek: 5, HourMin: 11, HourMax: 24},
			expected: ErrInvalidHourWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.TopProducts(tt.filters)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_TopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	filters := domain.TopProductFilters{
		StoreID:     3,
		ChannelName: "iFood",
		DayOfWeek:   5,
		HourMin:     19,
		HourMax:     23,
	}

	mockRepo.EXPECT().
		TopProducts(filters).
		Return([]domain.TopProduct{
			{ProductName: "Pizza Margherita", TotalQuantity: 320},
			{ProductName: "Pizza Calabresa", TotalQuantity: 280},
		}, nil)

	products, err := service.TopProducts(filters)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pizza Margherita", products[0].ProductName)
}

func TestService_TopProducts_ResultadoVazioNaoEhErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	filters := domain.TopProductFilters{
		StoreID:     3,
		ChannelName: "Balcão",
		DayOfWeek:   1,
		HourMin:     0,
		HourMax:     23,
	}

	mockRepo.EXPECT().
		TopProducts(filters).
		Return([]domain.TopProduct{}, nil)

	products, err := service.TopProducts(filters)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMeanOfDailyMeans(t *testing.T) {
	// Dias com poucas vendas pesam igual a dias cheios: a média da loja
	// é a média das médias diárias, não a média de todas as vendas.
	daily := []domain.StoreDailyTicketAverage{
		{StoreName: "Centro", AvgTicket: 100},
		{StoreName: "Centro", AvgTicket: 50},
		{StoreName: "Jardins", AvgTicket: 80},
	}

	averages := MeanOfDailyMeans(daily)

	require.Len(t, averages, 2)

	assert.Equal(t, "Centro", averages[0].StoreName)
	assert.Equal(t, 75.0, averages[0].AvgTicket)
	assert.Equal(t, 2, averages[0].Days)

	assert.Equal(t, "Jardins", averages[1].StoreName)
	assert.Equal(t, 80.0, averages[1].AvgTicket)
	assert.Equal(t, 1, averages[1].Days)
}

func TestMeanOfDailyMeans_DifereDaMediaAgrupada(t *testing.T) {
	// Dois dias com volumes bem diferentes: um dia fraco com uma única
	// venda cara e um dia cheio com quatro vendas baratas.
	salesByDay := [][]float64{
		{100},
		{50, 50, 50, 50},
	}

	daily := make([]domain.StoreDailyTicketAverage, 0, len(salesByDay))
	var pooledSum float64
	var pooledCount int

	for i, sales := range salesByDay {
		var daySum float64
		for _, sale := range sales {
			daySum += sale
			pooledSum += sale
			pooledCount++
		}
		daily = append(daily, domain.StoreDailyTicketAverage{
			Date:      time.Date(2024, 6, 1+i, 0, 0, 0, 0, time.UTC),
			StoreName: "Centro",
			AvgTicket: daySum / float64(len(sales)),
		})
	}

	pooledMean := pooledSum / float64(pooledCount)

	averages := MeanOfDailyMeans(daily)

	require.Len(t, averages, 1)
	assert.Equal(t, 75.0, averages[0].AvgTicket, "cada dia pesa igual, independente do volume")
	assert.Equal(t, 60.0, pooledMean)
	assert.NotEqual(t, pooledMean, averages[0].AvgTicket,
		"a média das médias diárias não é a média de todas as vendas")
}

func TestMeanOfDailyMeans_Vazio(t *testing.T) {
	averages := MeanOfDailyMeans(nil)

	assert.NotNil(t, averages)
	assert.Empty(t, averages)
}

func TestService_TicketAverageByStore_PeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	period := domain.DateRange{
		Start: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := service.TicketAverageByStore(period)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.TicketAverageByChannel(period)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRankByEstimatedMargin(t *testing.T) {
	margins := []domain.ProductMargin{
		{ProductName: "Refrigerante", AvgSalePrice: 10, AvgBasePrice: 2},          // 80%
		{ProductName: "Pizza Quatro Queijos", AvgSalePrice: 80, AvgBasePrice: 60}, // 25%
		{ProductName: "Brinde", AvgSalePrice: 0, AvgBasePrice: 5},                 // preço zerado
	}

	ranked := RankByEstimatedMargin(margins)

	require.Len(t, ranked, 3)

	// Ordenado do pior para o melhor
	assert.Equal(t, "Brinde", ranked[0].ProductName)
	assert.Equal(t, 0.0, ranked[0].EstimatedMarginPercent)

	assert.Equal(t, "Pizza Quatro Queijos", ranked[1].ProductName)
	assert.Equal(t, 25.0, ranked[1].EstimatedMarginPercent)

	assert.Equal(t, "Refrigerante", ranked[2].ProductName)
	assert.Equal(t, 80.0, ranked[2].EstimatedMarginPercent)
}

func TestService_MarginRanking_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		MarginRanking(int64(7)).
		Return(nil, errors.New("conexão recusada"))

	_, err := service.MarginRanking(7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao carregar margem por produto")
}
