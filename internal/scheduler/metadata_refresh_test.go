package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingrediente-certo/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/config"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/domain"
	"github.com/ingrediente-certo/restaurant-insights-api/internal/usecases/cataloging"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		MetadataRefresh: config.MetadataRefresh{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
	}
}

func TestMetadataRefreshService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)
	catalogService := cataloging.NewService(mockRepo)

	mockRepo.EXPECT().
		ListActiveStores().
		Return([]domain.Store{{ID: 1, Name: "Centro"}}, nil)

	mockRepo.EXPECT().
		ListChannels().
		Return([]domain.Channel{{ID: 1, Name: "iFood"}}, nil)

	service := NewMetadataRefreshService(catalogService, newTestConfig(true))

	err := service.Run()
	require.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.False(t, status.LastRunStartedAt.IsZero())
	assert.False(t, status.LastRunCompletedAt.IsZero())
	assert.Empty(t, status.LastRunError)
}

func TestMetadataRefreshService_Run_RegistraErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)
	catalogService := cataloging.NewService(mockRepo)

	mockRepo.EXPECT().
		ListActiveStores().
		Return(nil, assert.AnError)

	service := NewMetadataRefreshService(catalogService, newTestConfig(true))

	err := service.Run()
	require.Error(t, err)

	status := service.Status()
	assert.NotEmpty(t, status.LastRunError)
}

func TestMetadataRefreshService_Status_Inicial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMetadataRepository(ctrl)
	catalogService := cataloging.NewService(mockRepo)

	service := NewMetadataRefreshService(catalogService, newTestConfig(false))

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, "0 5 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.True(t, status.LastRunStartedAt.IsZero())
}
