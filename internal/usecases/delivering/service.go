// Package delivering responde as perguntas de logística do dashboard:
// desempenho de entrega por dia/hora, por bairro e o resumo geral da loja.
package delivering

import (
	"math"
	"sort"
	"time"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

type DeliveryInsighter interface {
	PerformanceByTimeSlot(storeID int64) ([]domain.TimeSlotPerformance, error)
	PerformanceByNeighborhood(storeID int64) ([]domain.NeighborhoodPerformance, error)
	Overview(storeID int64) (*domain.DeliveryOverview, error)
}

type Service struct {
	deliveryRepo repository.DeliveryMetricsRepository
	cache        *cache.TTLCache
	cacheTTL     time.Duration
}

func NewService(deliveryRepo repository.DeliveryMetricsRepository) *Service {
	return &Service{
		deliveryRepo: deliveryRepo,
	}
}

// WithCache habilita a memoização por (operação, parâmetros).
func (s *Service) WithCache(c *cache.TTLCache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// PerformanceByTimeSlot retorna os buckets (dia da semana, hora)
// observados para a loja, com média e P90 do tempo de entrega em minutos.
func (s *Service) PerformanceByTimeSlot(storeID int64) ([]domain.TimeSlotPerformance, error) {
	key := cache.Key("delivery_time_slots", storeID)
	if cached, ok := s.fromCache(key); ok {
		if slots, ok := cached.([]domain.TimeSlotPerformance); ok {
			return slots, nil
		}
	}

	slots, err := s.deliveryRepo.PerformanceByTimeSlot(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar desempenho de entrega por horário")
	}

	s.toCache(key, slots)
	return slots, nil
}

// PerformanceByNeighborhood retorna os bairros com amostra relevante,
// do pior para o melhor tempo médio de entrega.
func (s *Service) PerformanceByNeighborhood(storeID int64) ([]domain.NeighborhoodPerformance, error) {
	key := cache.Key("delivery_neighborhoods", storeID)
	if cached, ok := s.fromCache(key); ok {
		if neighborhoods, ok := cached.([]domain.NeighborhoodPerformance); ok {
			return neighborhoods, nil
		}
	}

	neighborhoods, err := s.deliveryRepo.PerformanceByNeighborhood(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar desempenho de entrega por bairro")
	}

	s.toCache(key, neighborhoods)
	return neighborhoods, nil
}

// Overview resume todas as entregas concluídas da loja: total, tempo
// médio e P90, calculados sobre as durações individuais.
func (s *Service) Overview(storeID int64) (*domain.DeliveryOverview, error) {
	key := cache.Key("delivery_overview", storeID)
	if cached, ok := s.fromCache(key); ok {
		if overview, ok := cached.(*domain.DeliveryOverview); ok {
			return overview, nil
		}
	}

	minutes, err := s.deliveryRepo.CompletedDeliveryMinutes(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar durações de entrega")
	}

	overview := &domain.DeliveryOverview{
		DeliveryCount: len(minutes),
	}

	if len(minutes) > 0 {
		mean, err := stats.Mean(stats.Float64Data(minutes))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao calcular tempo médio de entrega")
		}

		overview.AvgDeliveryMinutes = utils.RoundWithTwoDecimalPlace(mean)
		overview.P90DeliveryMinutes = utils.RoundWithTwoDecimalPlace(PercentileCont(minutes, 0.9))
	}

	s.toCache(key, overview)
	return overview, nil
}

// PercentileCont calcula o percentil contínuo (interpolado) de fraction
// em [0,1], com a mesma semântica do PERCENTILE_CONT do Postgres usado
// nas consultas por bucket. Retorna 0 para entrada vazia.
func PercentileCont(values []float64, fraction float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := fraction * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
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
