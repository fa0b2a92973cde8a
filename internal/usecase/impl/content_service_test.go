package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	mockRepo "github.com/reactive-web/reactive-cms/internal/mocks/repository"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

type contentMocks struct {
	pageRepo *mockRepo.MockPageRepository
	postRepo *mockRepo.MockPostRepository
	siteRepo *mockRepo.MockSiteRepository
}

func newContentService(t *testing.T, cfg *config.Config) (usecase.ContentUsecase, contentMocks) {
	t.Helper()

	mocks := contentMocks{
		pageRepo: mockRepo.NewMockPageRepository(t),
		postRepo: mockRepo.NewMockPostRepository(t),
		siteRepo: mockRepo.NewMockSiteRepository(t),
	}

	service := NewContentService(ContentServiceParams{
		PageRepo: mocks.pageRepo,
		PostRepo: mocks.postRepo,
		SiteRepo: mocks.siteRepo,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	return service, mocks
}

func acmeSite() *entity.Site {
	return &entity.Site{
		ID:           1,
		Name:         "Acme",
		URL:          "https://acme.test",
		ItemsPerPage: 2,
	}
}

func newPost(slug string, age time.Duration) *entity.Post {
	return &entity.Post{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     slug,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestContentService_HomePage_DefaultWhenUnconfigured(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)

	view, err := service.HomePage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.Title)
	assert.Equal(t, "default/index", view.Template)
	assert.Nil(t, view.Page)
}

func TestContentService_HomePage_ConfiguredPage(t *testing.T) {
	homeID := uuid.New()
	cfg := newTestConfig()
	cfg.Site.HomePageID = homeID.String()
	service, mocks := newContentService(t, cfg)

	ctx := context.Background()
	home := &entity.Page{ID: homeID, Slug: "welcome", Title: "Welcome", Template: "landing"}

	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)
	mocks.pageRepo.EXPECT().FindByID(ctx, homeID).Return(home, nil)

	view, err := service.HomePage(ctx)
	require.NoError(t, err)
	assert.Equal(t, home, view.Page)
	assert.Equal(t, "template/landing", view.Template)
}

func TestContentService_PageBySlug_NotFound(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	mocks.pageRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrPageNotFound)

	view, err := service.PageBySlug(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_PageBySlug_Found(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	page := &entity.Page{ID: uuid.New(), Slug: "about", Title: "About"}

	mocks.pageRepo.EXPECT().FindBySlug(ctx, "about").Return(page, nil)
	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)

	view, err := service.PageBySlug(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.Title)
	assert.Equal(t, "default/page-detail", view.Template)
	assert.Equal(t, page, view.Page)
}

func TestContentService_PostBySlug_NotFound(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	mocks.postRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrPostNotFound)

	view, err := service.PostBySlug(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_PostArchive_PaginationMath(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	posts := []*entity.Post{newPost("third", 3*time.Hour), newPost("fourth", 4*time.Hour)}

	// Five posts, two per page: page 2 skips two and has two pages remaining after it.
	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)
	mocks.postRepo.EXPECT().Count(ctx).Return(int64(5), nil)
	mocks.postRepo.EXPECT().List(ctx, 2, 2).Return(posts, nil)

	view, err := service.PostArchive(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.TotalItems)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 2, view.ItemsSkipped)
	assert.Equal(t, 2, view.CurrentPage)
	assert.Equal(t, 2, view.ItemsPerPage)
	assert.Equal(t, posts, view.Items)
}

func TestContentService_PostArchive_ClampsPageBelowOne(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	posts := []*entity.Post{newPost("first", time.Hour)}

	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)
	mocks.postRepo.EXPECT().Count(ctx).Return(int64(1), nil)
	mocks.postRepo.EXPECT().List(ctx, 0, 2).Return(posts, nil)

	view, err := service.PostArchive(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, 0, view.ItemsSkipped)
}

func TestContentService_PostArchive_EmptyPageNotFound(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()

	mocks.siteRepo.EXPECT().Get(ctx).Return(acmeSite(), nil)
	mocks.postRepo.EXPECT().Count(ctx).Return(int64(5), nil)
	mocks.postRepo.EXPECT().List(ctx, 18, 2).Return(nil, nil)

	view, err := service.PostArchive(ctx, 10)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_PostArchive_FallsBackToConfiguredPageSize(t *testing.T) {
	service, mocks := newContentService(t, newTestConfig())

	ctx := context.Background()
	posts := []*entity.Post{newPost("first", time.Hour)}

	// Before setup there is no site record; the static default applies.
	mocks.siteRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSiteNotFound)
	mocks.postRepo.EXPECT().Count(ctx).Return(int64(1), nil)
	mocks.postRepo.EXPECT().List(ctx, 0, 10).Return(posts, nil)

	view, err := service.PostArchive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, view.ItemsPerPage)
	assert.Empty(t, view.Title)
}
