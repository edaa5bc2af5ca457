package cataloging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/cache"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
)

func TestService_Refresh_PreencheDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListActiveStores().
		Return([]domain.Store{
			{ID: 1, Name: "LTDA - Centro"},
			{ID: 2, Name: "Jardins"},
		}, nil)

	mockRepo.EXPECT().
		ListChannels().
		Return([]domain.Channel{
			{ID: 1, Name: "iFood"},
			{ID: 2, Name: "Balcão"},
		}, nil)

	metadata, err := service.Refresh()

	require.NoError(t, err)
	require.Len(t, metadata.Stores, 2)
	assert.Equal(t, "Centro", metadata.Stores[0].DisplayName)
	assert.Equal(t, "Jardins", metadata.Stores[1].DisplayName)
	assert.Len(t, metadata.Channels, 2)
}

func TestService_Metadata_UsaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)

	queryCache := cache.New()
	defer queryCache.Close()

	service := NewService(mockRepo).WithCache(queryCache, time.Hour)

	// O repositório deve ser consultado uma única vez
	mockRepo.EXPECT().
		ListActiveStores().
		Return([]domain.Store{{ID: 1, Name: "Centro"}}, nil).
		Times(1)

	mockRepo.EXPECT().
		ListChannels().
		Return([]domain.Channel{{ID: 1, Name: "iFood"}}, nil).
		Times(1)

	first, err := service.Metadata()
	require.NoError(t, err)

	second, err := service.Metadata()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Refresh_ErroAoListarLojas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListActiveStores().
		Return(nil, assert.AnError)

	_, err := service.Refresh()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao carregar lojas ativas")
}
