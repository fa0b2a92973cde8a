package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	mockRepo "github.com/reactive-web/reactive-cms/internal/mocks/repository"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

func newSetupService(t *testing.T, txManager repository.TransactionManager, userRepo repository.UserRepository) usecase.SetupUsecase {
	t.Helper()

	return NewSetupService(SetupServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    newTestHasher(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func acmeInput() *usecase.SetupInput {
	return &usecase.SetupInput{
		SiteName:  "Acme",
		SiteURL:   "https://acme.test",
		FirstName: "Ada",
		Email:     "ada@acme.test",
		UserName:  "ada",
		Password:  "secret123",
	}
}

func TestSetupService_IsInitialized(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := newSetupService(t, mockRepo.NewMockTransactionManager(t), mockUserRepo)

	ctx := context.Background()

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), nil).Once()
	initialized, err := service.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	mockUserRepo.EXPECT().Count(ctx).Return(int64(1), nil).Once()
	initialized, err = service.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}

func TestSetupService_IsInitialized_CountError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := newSetupService(t, mockRepo.NewMockTransactionManager(t), mockUserRepo)

	ctx := context.Background()

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

	initialized, err := service.IsInitialized(ctx)
	require.Error(t, err)
	assert.False(t, initialized)
}

func TestSetupService_Bootstrap_CreatesAdminAndSingletons(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	mockSiteRepo := mockRepo.NewMockSiteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newSetupService(t, mockTx, mockUserRepo)

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().SettingRepo().Return(mockSettingRepo)
	factory.EXPECT().SiteRepo().Return(mockSiteRepo)

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mockSettingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Setting")).Return(nil)
	mockSiteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Site")).Return(nil)

	mockTx.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := service.Bootstrap(ctx, acmeInput())
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "ada", output.User.UserName)
	assert.Equal(t, "ada@acme.test", output.User.Email)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
	assert.True(t, output.User.Active)
	assert.NotEmpty(t, output.User.PasswordHash)
	assert.NotEqual(t, "secret123", output.User.PasswordHash)

	assert.Equal(t, "DASHBOARD", output.Setting.PageTitle)
	assert.Equal(t, 20, output.Setting.ItemsPerPage)

	assert.Equal(t, "Acme", output.Site.Name)
	assert.Equal(t, "https://acme.test", output.Site.URL)
	assert.Equal(t, 10, output.Site.ItemsPerPage)
}

func TestSetupService_Bootstrap_FailsWhenAlreadyCompleted(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newSetupService(t, mockTx, mockUserRepo)

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().SettingRepo().Return(mockRepo.NewMockSettingRepository(t)).Maybe()
	factory.EXPECT().SiteRepo().Return(mockRepo.NewMockSiteRepository(t)).Maybe()

	// The count check inside the transaction finds an existing user.
	mockUserRepo.EXPECT().Count(ctx).Return(int64(1), nil)

	mockTx.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := service.Bootstrap(ctx, acmeInput())
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSetupAlreadyCompleted)
}

func TestSetupService_Bootstrap_RejectsAllEmptyInput(t *testing.T) {
	service := newSetupService(t, mockRepo.NewMockTransactionManager(t), mockRepo.NewMockUserRepository(t))

	output, err := service.Bootstrap(context.Background(), &usecase.SetupInput{})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSetupValidationFailed)
}

func TestSetupService_Bootstrap_AcceptsPartiallyEmptyInput(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	mockSiteRepo := mockRepo.NewMockSiteRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newSetupService(t, mockTx, mockUserRepo)

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().SettingRepo().Return(mockSettingRepo)
	factory.EXPECT().SiteRepo().Return(mockSiteRepo)

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mockSettingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Setting")).Return(nil)
	mockSiteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Site")).Return(nil)

	mockTx.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	// A single non-empty field is enough; the historical installer admits it.
	output, err := service.Bootstrap(ctx, &usecase.SetupInput{UserName: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada", output.User.UserName)
	assert.Empty(t, output.Site.Name)
}

func TestSetupService_Bootstrap_WrapsPersistenceFailure(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newSetupService(t, mockTx, mockUserRepo)

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().SettingRepo().Return(mockRepo.NewMockSettingRepository(t)).Maybe()
	factory.EXPECT().SiteRepo().Return(mockRepo.NewMockSiteRepository(t)).Maybe()

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(errors.New("insert failed"))

	mockTx.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := service.Bootstrap(ctx, acmeInput())
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSetupPersistenceFailed)
}

func TestSetupService_Bootstrap_PreservesUserAlreadyExists(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newSetupService(t, mockTx, mockUserRepo)

	ctx := context.Background()

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().SettingRepo().Return(mockRepo.NewMockSettingRepository(t)).Maybe()
	factory.EXPECT().SiteRepo().Return(mockRepo.NewMockSiteRepository(t)).Maybe()

	mockUserRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("user name or email already exists"))

	mockTx.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := service.Bootstrap(ctx, acmeInput())
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
