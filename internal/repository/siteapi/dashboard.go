package siteapi

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type dashboardRepository struct {
	api *siteapi.Client
}

func NewDashboardRepository(api *siteapi.Client) dashboard.DashboardRepository {
	return &dashboardRepository{api: api}
}

func (r *dashboardRepository) Summary(ctx context.Context) (dashboard.Summary, error) {
	var out dashboard.Summary
	if err := r.api.Get(ctx, "/api/dashboard/summary", nil, &out); err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return out, nil
}
