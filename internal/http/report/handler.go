package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rmoreira/contas/internal/report"
	"github.com/rmoreira/contas/internal/transaction"

	txHandler "github.com/rmoreira/contas/internal/http/transaction"
)

type Handler struct {
	svc *transaction.Service

	// now supplies "today" for default month parameters; overridable in
	// tests.
	now func() time.Time
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/categories", h.categories)
	r.Get("/monthly", h.monthly)
	r.Get("/credit/bill", h.creditBill)
	r.Get("/credit/upcoming", h.creditUpcoming)
}

type totalsResponse struct {
	Income        transaction.Cents `json:"income"`
	Expense       transaction.Cents `json:"expense"`
	Balance       transaction.Cents `json:"balance"`
	CreditExpense transaction.Cents `json:"creditExpense"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), txHandler.ParseFilter(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	t := report.Summarize(txs)

	writeJSON(w, totalsResponse{
		Income:        t.Income,
		Expense:       t.Expense,
		Balance:       t.Balance,
		CreditExpense: t.CreditExpense,
	})
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	typ := transaction.Type(r.URL.Query().Get("type"))
	if !typ.Valid() {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), transaction.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, report.ByCategory(txs, typ))
}

type monthTotalsResponse struct {
	Month   string            `json:"month"`
	Income  transaction.Cents `json:"income"`
	Expense transaction.Cents `json:"expense"`
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), transaction.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	buckets := report.ByMonth(txs)

	resp := make([]monthTotalsResponse, 0, len(buckets))
	for _, month := range report.Months(buckets) {
		b := buckets[month]
		resp = append(resp, monthTotalsResponse{Month: month, Income: b.Income, Expense: b.Expense})
	}

	writeJSON(w, resp)
}

func (h *Handler) creditBill(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = h.now().Format("2006-01")
	}

	txs, err := h.svc.List(r.Context(), transaction.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"month": month,
		"total": report.CreditCardBill(txs, month),
	})
}

type scheduleMonthResponse struct {
	Month string            `json:"month"`
	Total transaction.Cents `json:"total"`
	Count int               `json:"count"`
}

type upcomingResponse struct {
	From     string                  `json:"from"`
	Total    transaction.Cents       `json:"total"`
	Schedule []scheduleMonthResponse `json:"schedule"`
}

func (h *Handler) creditUpcoming(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		// Obligations from the next month forward.
		from = h.now().AddDate(0, 1, 0).Format("2006-01")
	}

	txs, err := h.svc.List(r.Context(), transaction.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	schedule := report.InstallmentSchedule(txs, from)

	resp := upcomingResponse{
		From:     from,
		Total:    report.FutureInstallments(txs, from),
		Schedule: make([]scheduleMonthResponse, 0, len(schedule)),
	}

	for _, month := range report.Months(schedule) {
		bucket := schedule[month]
		resp.Schedule = append(resp.Schedule, scheduleMonthResponse{
			Month: month,
			Total: bucket.Total,
			Count: len(bucket.Items),
		})
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
