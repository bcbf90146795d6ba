package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rmoreira/contas/internal/export"

	txHandler "github.com/rmoreira/contas/internal/http/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv", h.downloadCSV)
}

func (h *Handler) downloadCSV(w http.ResponseWriter, r *http.Request) {
	filter := txHandler.ParseFilter(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))

	if _, err := h.svc.Export(r.Context(), filter, w); err != nil {
		// Headers may be gone already; nothing to do but report.
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
