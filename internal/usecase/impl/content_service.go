package impl

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/reactive-web/reactive-cms/config"
	deliverycontext "github.com/reactive-web/reactive-cms/internal/delivery/context"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/errors"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

const defaultPageTemplate = "default/page-detail"

// contentService implements the ContentUsecase interface.
type contentService struct {
	pageRepo repository.PageRepository
	postRepo repository.PostRepository
	siteRepo repository.SiteRepository
	siteCfg  *config.SiteConfig
	logger   *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	PageRepo repository.PageRepository
	PostRepo repository.PostRepository
	SiteRepo repository.SiteRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		pageRepo: params.PageRepo,
		postRepo: params.PostRepo,
		siteRepo: params.SiteRepo,
		siteCfg:  params.Config.Site,
		logger:   params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// siteTitle returns the configured site name, or empty before setup.
func (srv *contentService) siteTitle(ctx context.Context) string {
	site, err := srv.siteRepo.Get(ctx)
	if err != nil {
		return ""
	}

	return site.Name
}

// itemsPerPage prefers the persisted site page size over the static default.
func (srv *contentService) itemsPerPage(ctx context.Context) int {
	site, err := srv.siteRepo.Get(ctx)
	if err != nil || site.ItemsPerPage <= 0 {
		return srv.siteCfg.ItemsPerPage
	}

	return site.ItemsPerPage
}

// HomePage serves the configured home page, falling back to the default
// index view when no home page is set.
func (srv *contentService) HomePage(ctx context.Context) (*usecase.PageView, error) {
	view := &usecase.PageView{
		Title:    srv.siteTitle(ctx),
		Template: "default/index",
	}

	if srv.siteCfg.HomePageID == "" {
		return view, nil
	}

	homeID, err := uuid.Parse(srv.siteCfg.HomePageID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "invalid home page id configured")
	}

	page, err := srv.pageRepo.FindByID(ctx, homeID)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "home page missing")
		}

		return nil, errors.Wrap(err, "failed to load home page")
	}

	view.Page = page
	if page.Template != "" {
		view.Template = "template/" + page.Template
	}

	return view, nil
}

// PageBySlug serves a single page.
func (srv *contentService) PageBySlug(ctx context.Context, slug string) (*usecase.PageView, error) {
	page, err := srv.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPageNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("Route: /page/" + slug + " Not found.")
		}

		return nil, errors.Wrap(err, "failed to find page by slug")
	}

	template := defaultPageTemplate
	if page.Template != "" {
		template = "template/" + page.Template
	}

	return &usecase.PageView{
		Title:    srv.siteTitle(ctx),
		Template: template,
		Page:     page,
	}, nil
}

// PostBySlug serves a single blog post.
func (srv *contentService) PostBySlug(ctx context.Context, slug string) (*usecase.PostView, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("Route: /blog/" + slug + " Not found.")
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return &usecase.PostView{
		Title: srv.siteTitle(ctx),
		Post:  post,
	}, nil
}

// PostArchive serves one page of the blog archive with skip/limit pagination.
func (srv *contentService) PostArchive(ctx context.Context, page int) (*usecase.PostArchiveView, error) {
	if page < 1 {
		page = 1
	}

	perPage := srv.itemsPerPage(ctx)
	skipped := perPage * (page - 1)

	totalItems, err := srv.postRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posts")
	}

	items, err := srv.postRepo.List(ctx, skipped, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	if len(items) == 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("Route: /blog/page/" + strconv.Itoa(page) + " Not found.")
	}

	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))

	srv.log(ctx).Debug("Serving post archive", slog.Int("page", page), slog.Int("items", len(items)))

	return &usecase.PostArchiveView{
		Title:        srv.siteTitle(ctx),
		Items:        items,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		ItemsSkipped: skipped,
		CurrentPage:  page,
		ItemsPerPage: perPage,
	}, nil
}
