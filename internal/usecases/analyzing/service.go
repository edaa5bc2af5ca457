// Package analyzing responde as perguntas de vendas do dashboard:
// ranking de produtos, ticket médio e margem estimada por produto.
package analyzing

import (
	"sort"
	"time"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
	"github.com/pkg/errors"
)

// Erros de parâmetro malformado. O dashboard antigo montava a consulta
// sem validar; aqui rejeitamos na borda com mensagem clara.
var (
	ErrInvalidHourWindow = errors.New("janela de horário inválida: esperado 0 <= hour_min <= hour_max <= 23")
	ErrInvalidDayOfWeek  = errors.New("dia da semana inválido: esperado 0 (domingo) a 6 (sábado)")
	ErrMissingChannel    = errors.New("canal de vendas é obrigatório")
	ErrInvalidPeriod     = errors.New("período inválido: data de início posterior à data de fim")
)

type Analyzer interface {
	TopProducts(filters domain.TopProductFilters) ([]domain.TopProduct, error)
	TicketAverageByChannel(period domain.DateRange) ([]domain.ChannelTicketAverage, error)
	TicketAverageByStore(period domain.DateRange) ([]domain.StoreTicketAverage, error)
	MarginRanking(storeID int64) ([]domain.ProductMargin, error)
}

type Service struct {
	salesRepo repository.SalesMetricsRepository
	cache     *cache.TTLCache
	cacheTTL  time.Duration
}

func NewService(salesRepo repository.SalesMetricsRepository) *Service {
	return &Service{
		salesRepo: salesRepo,
	}
}

// WithCache habilita a memoização por (operação, parâmetros).
func (s *Service) WithCache(c *cache.TTLCache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// TopProducts retorna até 10 produtos mais vendidos para o filtro.
// Resultado vazio é um estado normal de exibição, nunca um erro.
func (s *Service) TopProducts(filters domain.TopProductFilters) ([]domain.TopProduct, error) {
	if filters.ChannelName == "" {
		return nil, ErrMissingChannel
	}
	if filters.DayOfWeek < 0 || filters.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	if filters.HourMin < 0 || filters.HourMax > 23 || filters.HourMin > filters.HourMax {
		return nil, ErrInvalidHourWindow
	}

	key := cache.Key("top_products",
		filters.StoreID, filters.ChannelName, filters.DayOfWeek, filters.HourMin, filters.HourMax)
	if cached, ok := s.fromCache(key); ok {
		if products, ok := cached.([]domain.TopProduct); ok {
			return products, nil
		}
	}

	products, err := s.salesRepo.TopProducts(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar ranking de produtos")
	}

	s.toCache(key, products)
	return products, nil
}

func (s *Service) TicketAverageByChannel(period domain.DateRange) ([]domain.ChannelTicketAverage, error) {
	if period.Start.After(period.End) {
		return nil, ErrInvalidPeriod
	}

	key := cache.Key("ticket_average_by_channel",
		period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
	if cached, ok := s.fromCache(key); ok {
		if averages, ok := cached.([]domain.ChannelTicketAverage); ok {
			return averages, nil
		}
	}

	averages, err := s.salesRepo.TicketAverageByChannel(period)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar ticket médio por canal")
	}

	s.toCache(key, averages)
	return averages, nil
}

// TicketAverageByStore consolida as médias diárias de cada loja em uma
// única média por loja no período: média das médias diárias, não uma
// média sobre todas as vendas. Dias com poucas vendas pesam igual a dias
// cheios; é assim que o número sempre foi reportado e ele não pode mudar.
func (s *Service) TicketAverageByStore(period domain.DateRange) ([]domain.StoreTicketAverage, error) {
	if period.Start.After(period.End) {
		return nil, ErrInvalidPeriod
	}

	key := cache.Key("ticket_average_by_store",
		period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
	if cached, ok := s.fromCache(key); ok {
		if averages, ok := cached.([]domain.StoreTicketAverage); ok {
			return averages, nil
		}
	}

	daily, err := s.salesRepo.TicketAverageByStore(period)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar ticket médio por loja")
	}

	averages := MeanOfDailyMeans(daily)

	s.toCache(key, averages)
	return averages, nil
}

// MeanOfDailyMeans consolida linhas diárias (dia, loja, ticket médio)
// em uma média por loja, dando o mesmo peso a cada dia observado.
func MeanOfDailyMeans(daily []domain.StoreDailyTicketAverage) []domain.StoreTicketAverage {
	type accumulator struct {
		sum  float64
		days int
	}

	byStore := make(map[string]*accumulator)
	for _, row := range daily {
		acc, ok := byStore[row.StoreName]
		if !ok {
			acc = &accumulator{}
			byStore[row.StoreName] = acc
		}
		acc.sum += row.AvgTicket
		acc.days++
	}

	averages := make([]domain.StoreTicketAverage, 0, len(byStore))
	for storeName, acc := range byStore {
		averages = append(averages, domain.StoreTicketAverage{
			StoreName: storeName,
			AvgTicket: utils.RoundWithTwoDecimalPlace(acc.sum / float64(acc.days)),
			Days:      acc.days,
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		return averages[i].StoreName < averages[j].StoreName
	})

	return averages
}

// MarginRanking deriva a margem estimada de cada produto da loja a
// partir dos agregados de preço e ordena do pior para o melhor.
func (s *Service) MarginRanking(storeID int64) ([]domain.ProductMargin, error) {
	key := cache.Key("margin_ranking", storeID)
	if cached, ok := s.fromCache(key); ok {
		if margins, ok := cached.([]domain.ProductMargin); ok {
			return margins, nil
		}
	}

	margins, err := s.salesRepo.MarginRanking(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar margem por produto")
	}

	margins = RankByEstimatedMargin(margins)

	s.toCache(key, margins)
	return margins, nil
}

// RankByEstimatedMargin preenche a margem estimada em percentual,
// (preço - custo) / preço * 100, e ordena ascendente: os produtos de
// pior margem aparecem primeiro.
func RankByEstimatedMargin(margins []domain.ProductMargin) []domain.ProductMargin {
	for i := range margins {
		if margins[i].AvgSalePrice == 0 {
			margins[i].EstimatedMarginPercent = 0
			continue
		}

		margin := (margins[i].AvgSalePrice - margins[i].AvgBasePrice) / margins[i].AvgSalePrice * 100
		margins[i].EstimatedMarginPercent = utils.RoundWithTwoDecimalPlace(margin)
	}

	sort.SliceStable(margins, func(i, j int) bool {
		return margins[i].EstimatedMarginPercent < margins[j].EstimatedMarginPercent
	})

	return margins
}

func (s *Service) fromCache(key string) (interface{}, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Service) toCache(key string, value interface{}) {
	if s.cache != nil {
		s.cache.Set(key, value, s.cacheTTL)
	}
}
