package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	mockRepo "github.com/reactive-web/reactive-cms/internal/mocks/repository"
)

func TestAdminService_Dashboard_UsesPersistedSettings(t *testing.T) {
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewAdminService(AdminServiceParams{
		SettingRepo: mockSettingRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	mockSettingRepo.EXPECT().Get(ctx).Return(&entity.Setting{
		ID:           1,
		PageTitle:    "Acme Admin",
		ItemsPerPage: 25,
	}, nil)

	view, err := service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Admin", view.Title)
	assert.Equal(t, 25, view.ItemsPerPage)
}

func TestAdminService_Dashboard_FallsBackBeforeSetup(t *testing.T) {
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewAdminService(AdminServiceParams{
		SettingRepo: mockSettingRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	mockSettingRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingNotFound)

	view, err := service.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DASHBOARD", view.Title)
	assert.Equal(t, 20, view.ItemsPerPage)
}

func TestAdminService_Dashboard_StoreFailure(t *testing.T) {
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewAdminService(AdminServiceParams{
		SettingRepo: mockSettingRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	mockSettingRepo.EXPECT().Get(ctx).Return(nil, errors.New("db down"))

	view, err := service.Dashboard(ctx)
	require.Error(t, err)
	assert.Nil(t, view)
}
