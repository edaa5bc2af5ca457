// Package segmenting implementa o pipeline RFM (Recência, Frequência,
// Valor Monetário): deriva a recência de cada cliente para uma data de
// análise, segmenta clientes em risco pelos limiares do operador e monta
// a distribuição de lealdade por faixa de frequência.
package segmenting

import (
	"sort"
	"time"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

var (
	ErrInvalidRecencyThreshold   = errors.New("limiar de recência inválido: esperado pelo menos 1 dia")
	ErrInvalidFrequencyThreshold = errors.New("limiar de frequência inválido: esperado pelo menos 1 compra")
)

// Faixas de lealdade da distribuição de frequência. Intervalos fechados
// no início e abertos no fim; frequência 3 é ocasional e 10 é leal.
const (
	bucketOccasionalLabel = "1-3x (Novos/Ocasionais)"
	bucketLoyalLabel      = "4-10x (Leais)"
	bucketVIPLabel        = "10+x (Melhores/VIP)"
)

type Segmenter interface {
	BaseFacts(analysisDate time.Time) ([]domain.CustomerRFM, error)
	Segment(analysisDate time.Time, criteria domain.SegmentCriteria) ([]domain.CustomerRFM, *domain.SegmentSummary, error)
	FrequencyDistribution(analysisDate time.Time) ([]domain.FrequencyBucket, error)
}

type Service struct {
	rfmRepo  repository.CustomerRFMRepository
	cache    *cache.TTLCache
	cacheTTL time.Duration
}

func NewService(rfmRepo repository.CustomerRFMRepository) *Service {
	return &Service{
		rfmRepo: rfmRepo,
	}
}

// WithCache habilita a memoização dos fatos base. A base de clientes
// muda devagar, então o TTL configurado costuma ser de uma hora.
func (s *Service) WithCache(c *cache.TTLCache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// BaseFacts retorna um fato RFM por cliente identificado com compras
// concluídas, com a recência derivada da data de análise informada,
// ordenado da menor para a maior recência. A recência depende só da data
// de análise, nunca do relógio, para que a mesma data reproduza o mesmo
// resultado.
func (s *Service) BaseFacts(analysisDate time.Time) ([]domain.CustomerRFM, error) {
	summaries, err := s.customerSummaries()
	if err != nil {
		return nil, err
	}

	return DeriveFacts(summaries, analysisDate), nil
}

// Segment retorna os clientes em risco para os limiares escolhidos,
// priorizados pelo gasto acumulado, junto com o resumo monetário do
// segmento.
func (s *Service) Segment(analysisDate time.Time, criteria domain.SegmentCriteria) ([]domain.CustomerRFM, *domain.SegmentSummary, error) {
	if criteria.RecencyThresholdDays < 1 {
		return nil, nil, ErrInvalidRecencyThreshold
	}
	if criteria.FrequencyThreshold < 1 {
		return nil, nil, ErrInvalidFrequencyThreshold
	}

	facts, err := s.BaseFacts(analysisDate)
	if err != nil {
		return nil, nil, err
	}

	segment := FilterSegment(facts, criteria)
	summary := SummarizeMonetary(segment)

	return segment, summary, nil
}

// FrequencyDistribution monta a distribuição de lealdade da base de
// clientes por faixa de frequência de compra.
func (s *Service) FrequencyDistribution(analysisDate time.Time) ([]domain.FrequencyBucket, error) {
	facts, err := s.BaseFacts(analysisDate)
	if err != nil {
		return nil, err
	}

	return BucketByFrequency(facts), nil
}

func (s *Service) customerSummaries() ([]domain.CustomerSummary, error) {
	const key = "rfm_customer_summaries"

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if summaries, ok := cached.([]domain.CustomerSummary); ok {
				return summaries, nil
			}
		}
	}

	summaries, err := s.rfmRepo.CustomerSummaries()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar fatos base de RFM")
	}

	if s.cache != nil {
		s.cache.Set(key, summaries, s.cacheTTL)
	}

	return summaries, nil
}

// DeriveFacts calcula a recência em dias de cada cliente em relação à
// data de análise e ordena da menor para a maior recência. Clientes sem
// compras concluídas já foram excluídos na agregação.
func DeriveFacts(summaries []domain.CustomerSummary, analysisDate time.Time) []domain.CustomerRFM {
	facts := make([]domain.CustomerRFM, 0, len(summaries))
	for _, summary := range summaries {
		facts = append(facts, domain.CustomerRFM{
			CustomerID:   summary.CustomerID,
			CustomerName: summary.CustomerName,
			Frequency:    summary.Frequency,
			Monetary:     summary.Monetary,
			RecencyDays:  RecencyDays(analysisDate, summary.LastSaleDate),
		})
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].RecencyDays < facts[j].RecencyDays
	})

	return facts
}

// RecencyDays conta os dias de calendário entre a última compra e a data
// de análise, ignorando o horário de ambas.
func RecencyDays(analysisDate, lastSale time.Time) int {
	analysis := utils.DateOnly(analysisDate.UTC())
	last := utils.DateOnly(lastSale.UTC())
	return int(analysis.Sub(last).Hours() / 24)
}

// FilterSegment aplica os limiares do operador: recência estritamente
// maior que o limiar de dias E frequência maior ou igual ao limiar de
// compras. O resultado vem ordenado pelo gasto acumulado, do maior para
// o menor, para priorizar quem mais vale reativar.
func FilterSegment(facts []domain.CustomerRFM, criteria domain.SegmentCriteria) []domain.CustomerRFM {
	segment := make([]domain.CustomerRFM, 0)
	for _, fact := range facts {
		if fact.RecencyDays > criteria.RecencyThresholdDays && fact.Frequency >= criteria.FrequencyThreshold {
			segment = append(segment, fact)
		}
	}

	sort.SliceStable(segment, func(i, j int) bool {
		return segment[i].Monetary > segment[j].Monetary
	})

	return segment
}

// BucketByFrequency conta os clientes por faixa de lealdade. Cada faixa
// é um intervalo [Min, Max); a última cobre até a maior frequência
// observada, então todo cliente cai em exatamente uma faixa.
func BucketByFrequency(facts []domain.CustomerRFM) []domain.FrequencyBucket {
	maxFrequency := 0
	for _, fact := range facts {
		if fact.Frequency > maxFrequency {
			maxFrequency = fact.Frequency
		}
	}

	vipMax := maxFrequency + 1
	if vipMax < 12 {
		vipMax = 12
	}

	buckets := []domain.FrequencyBucket{
		{Label: bucketOccasionalLabel, Min: 1, Max: 4},
		{Label: bucketLoyalLabel, Min: 4, Max: 11},
		{Label: bucketVIPLabel, Min: 11, Max: vipMax},
	}

	for _, fact := range facts {
		for i := range buckets {
			if fact.Frequency >= buckets[i].Min && fact.Frequency < buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}

	return buckets
}

// SummarizeMonetary resume o gasto acumulado dos clientes do segmento:
// média, mediana e quartis, para o cabeçalho da lista de alvos.
func SummarizeMonetary(segment []domain.CustomerRFM) *domain.SegmentSummary {
	summary := &domain.SegmentSummary{
		Customers: len(segment),
	}

	if len(segment) == 0 {
		return summary
	}

	monetary := make(stats.Float64Data, 0, len(segment))
	for _, fact := range segment {
		monetary = append(monetary, fact.Monetary)
	}

	if mean, err := stats.Mean(monetary); err == nil {
		summary.MonetaryMean = utils.RoundWithTwoDecimalPlace(mean)
	}
	if median, err := stats.Median(monetary); err == nil {
		summary.MonetaryMedian = utils.RoundWithTwoDecimalPlace(median)
	}

	if quartiles, err := stats.Quartile(monetary); err == nil {
		summary.MonetaryP25 = utils.RoundWithTwoDecimalPlace(quartiles.Q1)
		summary.MonetaryP75 = utils.RoundWithTwoDecimalPlace(quartiles.Q3)
	}

	return summary
}
