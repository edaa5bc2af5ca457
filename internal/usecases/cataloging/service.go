// Package cataloging carrega os dados estáticos (lojas ativas e canais)
// usados pelos filtros de todas as páginas do dashboard.
package cataloging

import (
	"time"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const metadataCacheKey = "metadata"

type Cataloger interface {
	Metadata() (*domain.Metadata, error)
	Refresh() (*domain.Metadata, error)
}

type Service struct {
	metadataRepo repository.MetadataRepository
	cache        *cache.TTLCache
	cacheTTL     time.Duration
}

func NewService(metadataRepo repository.MetadataRepository) *Service {
	return &Service{
		metadataRepo: metadataRepo,
	}
}

// WithCache habilita a memoização dos metadados. Lojas e canais mudam
// raramente, então o TTL configurado costuma ser de um dia.
func (s *Service) WithCache(c *cache.TTLCache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// Metadata retorna lojas ativas e canais, do cache quando possível.
func (s *Service) Metadata() (*domain.Metadata, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(metadataCacheKey); ok {
			if metadata, ok := cached.(*domain.Metadata); ok {
				return metadata, nil
			}
		}
	}

	return s.Refresh()
}

// Refresh recarrega os metadados da base operacional, ignorando o cache,
// e repõe a entrada memoizada.
func (s *Service) Refresh() (*domain.Metadata, error) {
	stores, err := s.metadataRepo.ListActiveStores()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar lojas ativas")
	}

	channels, err := s.metadataRepo.ListChannels()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar canais")
	}

	for i := range stores {
		stores[i].DisplayName = utils.FormatStoreName(stores[i].Name)
	}

	metadata := &domain.Metadata{
		Stores:   stores,
		Channels: channels,
	}

	if s.cache != nil {
		s.cache.Set(metadataCacheKey, metadata, s.cacheTTL)
	}

	logrus.WithFields(logrus.Fields{
		"stores":   len(stores),
		"channels": len(channels),
	}).Debug("metadados recarregados")

	return metadata, nil
}
