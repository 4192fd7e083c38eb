package http

import (
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type PaymentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AutoSalary(w http.ResponseWriter, r *http.Request)
	GetMyPayments(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{
		paymentService: paymentService,
	}
}

// List implements PaymentHandler.
func (h *paymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	filter := payment.PaymentFilter{
		Search:   r.URL.Query().Get("q"),
		WorkerID: int64Query(r, "worker"),
		Type:     r.URL.Query().Get("type"),
	}

	if cachedQuery(r) {
		response.Success(w, h.paymentService.Cached(sess, filter))
		return
	}

	result, err := h.paymentService.List(r.Context(), sess, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements PaymentHandler.
func (h *paymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req payment.PaymentRequest
	if !decodeJSON(w, r, "CreatePayment", &req) {
		return
	}

	notice, err := h.paymentService.Create(r.Context(), sess, req)
	if err != nil {
		slog.Error("CreatePayment service error", "error", err, "worker_id", req.WorkerID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, notice)
}

// Delete implements PaymentHandler.
func (h *paymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Payment")
	if !ok {
		return
	}

	notice, err := h.paymentService.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("DeletePayment service error", "error", err, "payment_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// AutoSalary implements PaymentHandler.
func (h *paymentHandlerImpl) AutoSalary(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	notice, err := h.paymentService.AutoSalaryAll(r.Context(), sess)
	if err != nil {
		slog.Error("AutoSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// GetMyPayments implements PaymentHandler.
func (h *paymentHandlerImpl) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	result, err := h.paymentService.Mine(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
