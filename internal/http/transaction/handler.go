package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmoreira/contas/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type          transaction.Type          `json:"type"`
	Category      string                    `json:"category"`
	Amount        transaction.Cents         `json:"amount"`
	Date          transaction.Date          `json:"date"`
	Description   string                    `json:"description"`
	PaymentMethod transaction.PaymentMethod `json:"paymentMethod,omitempty"`
	Installments  int                       `json:"installments,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.Add(r.Context(), transaction.CreateParams{
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.Date,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
	})
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// ParseFilter reads the shared listing filter from query parameters. The
// report handlers accept the same parameters, so this is exported.
func ParseFilter(r *http.Request) transaction.Filter {
	q := r.URL.Query()

	filter := transaction.Filter{
		Month:    q.Get("month"),
		Type:     transaction.Type(q.Get("type")),
		Category: q.Get("category"),
	}

	if s := q.Get("start_date"); s != "" {
		if d, err := transaction.ParseDate(s); err == nil {
			filter.StartDate = d
		}
	}

	if s := q.Get("end_date"); s != "" {
		if d, err := transaction.ParseDate(s); err == nil {
			filter.EndDate = d
		}
	}

	return filter
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), ParseFilter(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, transaction.ErrInvalidAmount) ||
		errors.Is(err, transaction.ErrInvalidDate) ||
		errors.Is(err, transaction.ErrInvalidType) ||
		errors.Is(err, transaction.ErrInvalidInstallmentCount)
}
