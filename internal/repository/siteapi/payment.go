package siteapi

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type paymentRepository struct {
	api *siteapi.Client
}

func NewPaymentRepository(api *siteapi.Client) payment.PaymentRepository {
	return &paymentRepository{api: api}
}

func (r *paymentRepository) List(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := r.api.Get(ctx, "/api/payments", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return nonNil(out), nil
}

func (r *paymentRepository) ListByWorker(ctx context.Context, workerID int64) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := r.api.Get(ctx, idPath("/api/payments/worker", workerID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list payments for worker %d: %w", workerID, err)
	}
	return nonNil(out), nil
}

// Add posts the flat {workerId, type, amount, note} body; the backend stamps the date.
func (r *paymentRepository) Add(ctx context.Context, req payment.PaymentRequest) (payment.Payment, error) {
	var out payment.Payment
	if err := r.api.Post(ctx, "/api/payments/add", req, &out); err != nil {
		return payment.Payment{}, fmt.Errorf("failed to add payment: %w", err)
	}
	return out, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, idPath("/api/payments", id)); err != nil {
		return mapNotFound(fmt.Errorf("failed to delete payment: %w", err), payment.ErrPaymentNotFound)
	}
	return nil
}

func (r *paymentRepository) Summary(ctx context.Context) (payment.FinanceSummary, error) {
	var out payment.FinanceSummary
	if err := r.api.Get(ctx, "/api/payments/summary", nil, &out); err != nil {
		return payment.FinanceSummary{}, fmt.Errorf("failed to get finance summary: %w", err)
	}
	return out, nil
}

func (r *paymentRepository) AutoSalaryAll(ctx context.Context) error {
	if err := r.api.Post(ctx, "/api/payments/auto-salary/all", nil, nil); err != nil {
		return fmt.Errorf("failed to generate salaries: %w", err)
	}
	return nil
}
