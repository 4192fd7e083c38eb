package payment

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

type PaymentService interface {
	// List loads payments, workers and the backend finance summary.
	List(ctx context.Context, sess *session.Session, filter PaymentFilter) (*ListPaymentResponse, error)
	Cached(sess *session.Session, filter PaymentFilter) *ListPaymentResponse

	Create(ctx context.Context, sess *session.Session, req PaymentRequest) (notification.Notice, error)
	Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error)
	// AutoSalaryAll asks the backend to generate a salary payment for every worker.
	AutoSalaryAll(ctx context.Context, sess *session.Session) (notification.Notice, error)

	Mine(ctx context.Context, sess *session.Session) (*WorkerPaymentResponse, error)
}
