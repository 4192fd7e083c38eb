package dashboard

import "context"

type DashboardRepository interface {
	Summary(ctx context.Context) (Summary, error)
}
