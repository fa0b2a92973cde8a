package usecase

import "context"

// DashboardView is the data handed to the dashboard view boundary.
type DashboardView struct {
	Title        string `json:"title"`
	ItemsPerPage int    `json:"items_per_page"`
}

// AdminUsecase covers the authenticated dashboard queries.
type AdminUsecase interface {
	// Dashboard returns the dashboard view configuration from the persisted
	// settings, falling back to configured defaults when setup has not run.
	Dashboard(ctx context.Context) (*DashboardView, error)
}
