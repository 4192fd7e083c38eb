package payment

import "context"

// PaymentRepository is the backend's payment resource.
type PaymentRepository interface {
	List(ctx context.Context) ([]Payment, error)
	ListByWorker(ctx context.Context, workerID int64) ([]Payment, error)
	Add(ctx context.Context, req PaymentRequest) (Payment, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (FinanceSummary, error)
	AutoSalaryAll(ctx context.Context) error
}
