package payment

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/service/aggregate"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

// TopPaidLimit is how many workers the top-paid table shows.
const TopPaidLimit = 5

type PaymentServiceImpl struct {
	paymentRepo payment.PaymentRepository
	workerRepo  worker.WorkerRepository
	stores      *store.Registry
	coord       *coordinator.Coordinator
	clock       calendar.Clock
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	workerRepo worker.WorkerRepository,
	stores *store.Registry,
	coord *coordinator.Coordinator,
	clock calendar.Clock,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
		stores:      stores,
		coord:       coord,
		clock:       clock,
	}
}

// List fails only when payments or workers cannot be loaded. A failed finance
// summary leaves the chart zeroed.
func (s *PaymentServiceImpl) List(ctx context.Context, sess *session.Session, f payment.PaymentFilter) (*payment.ListPaymentResponse, error) {
	var financeErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.coord.Refresh(gctx, sess, "payments.list", "Failed to load payments", s.fetchPayments(sess))
	})
	g.Go(func() error {
		return s.coord.Refresh(gctx, sess, "workers.list", "Failed to load workers", s.fetchWorkers(sess))
	})
	g.Go(func() error {
		financeErr = s.coord.Refresh(gctx, sess, "payments.summary", "Failed to load finance summary", s.fetchFinance(sess))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	resp := s.Cached(sess, f)
	if financeErr != nil {
		resp.Series = aggregate.FinanceSeries(nil, nil, s.clock.Today())
	}
	return resp, nil
}

// Cached computes totals over the filtered payments; the per-worker table and
// the top-paid list cover every loaded payment.
func (s *PaymentServiceImpl) Cached(sess *session.Session, f payment.PaymentFilter) *payment.ListPaymentResponse {
	st := s.stores.For(sess.Key())
	all := st.Payments()
	finance := st.Finance()

	payments := filter.Apply(all, filter.Payments(f))
	byWorker := aggregate.PayrollByWorker(all, st.Workers())
	return &payment.ListPaymentResponse{
		Payments: payments,
		Total:    len(payments),
		Totals:   aggregate.Payroll(payments),
		ByWorker: byWorker,
		Series:   aggregate.FinanceSeries(finance.SalaryMonthly, finance.AdvanceMonthly, s.clock.Today()),
		TopPaid:  aggregate.TopPaid(byWorker, TopPaidLimit),
	}
}

func (s *PaymentServiceImpl) Create(ctx context.Context, sess *session.Session, req payment.PaymentRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:     "payments.create",
		Validate: req.Validate,
		Call: func(ctx context.Context) error {
			_, err := s.paymentRepo.Add(ctx, req)
			return err
		},
		Refresh:        s.refetch(sess),
		Loading:        "Adding payment...",
		Success:        "Payment added",
		Failure:        "Failed to add payment",
		RefreshFailure: "Failed to fetch payments",
	})
}

func (s *PaymentServiceImpl) Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "payments.delete",
		Call: func(ctx context.Context) error {
			return s.paymentRepo.Delete(ctx, id)
		},
		Refresh:        s.refetch(sess),
		Loading:        "Deleting...",
		Success:        "Payment deleted",
		Failure:        "Failed to delete payment",
		RefreshFailure: "Failed to fetch payments",
	})
}

func (s *PaymentServiceImpl) AutoSalaryAll(ctx context.Context, sess *session.Session) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:           "payments.autoSalary",
		Call:           s.paymentRepo.AutoSalaryAll,
		Refresh:        s.refetch(sess),
		Loading:        "Generating salary for all workers...",
		Success:        "Salary generated for all workers",
		Failure:        "Failed to generate salaries",
		RefreshFailure: "Failed to fetch payments",
	})
}

// Mine lists the worker's payments, newest first.
func (s *PaymentServiceImpl) Mine(ctx context.Context, sess *session.Session) (*payment.WorkerPaymentResponse, error) {
	if !sess.IsWorker() {
		return nil, session.ErrWorkerRequired
	}
	if err := s.coord.Refresh(ctx, sess, "payments.mine", "Failed to load payments", s.fetchPayments(sess)); err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	payments := s.stores.For(sess.Key()).Payments()
	slices.SortStableFunc(payments, func(a, b payment.Payment) int {
		return compareDates(b.Date, a.Date)
	})
	return &payment.WorkerPaymentResponse{
		Payments: payments,
		Totals:   aggregate.Payroll(payments),
		Today:    s.clock.Today(),
	}, nil
}

func (s *PaymentServiceImpl) refetch(sess *session.Session) func(context.Context) error {
	return func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return s.fetchPayments(sess)(gctx) })
		g.Go(func() error { return s.fetchFinance(sess)(gctx) })
		return g.Wait()
	}
}

func (s *PaymentServiceImpl) fetchPayments(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	list := s.paymentRepo.List
	if sess.IsWorker() {
		workerID := sess.WorkerID()
		list = func(ctx context.Context) ([]payment.Payment, error) {
			return s.paymentRepo.ListByWorker(ctx, workerID)
		}
	}
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SlicePayments, list, st.CommitPayments)
	}
}

func (s *PaymentServiceImpl) fetchFinance(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceFinance, s.paymentRepo.Summary, st.CommitFinance)
	}
}

func (s *PaymentServiceImpl) fetchWorkers(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceWorkers, s.workerRepo.List, st.CommitWorkers)
	}
}

// compareDates orders undated payments first.
func compareDates(a, b *calendar.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
