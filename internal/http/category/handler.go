package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/transaction"
)

// Handler serves the static category and payment-method registry so UIs
// can populate their selectors.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type infoResponse struct {
	Key   string `json:"key"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type registryResponse struct {
	Expense        []infoResponse `json:"expense"`
	Income         []infoResponse `json:"income"`
	PaymentMethods []infoResponse `json:"paymentMethods"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	resp := registryResponse{
		Expense: infos(transaction.TypeExpense),
		Income:  infos(transaction.TypeIncome),
	}

	for _, pm := range category.PaymentMethods() {
		info := category.PaymentMethod(pm)
		resp.PaymentMethods = append(resp.PaymentMethods, infoResponse{
			Key:   string(pm),
			Icon:  info.Icon,
			Label: info.Label,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func infos(typ transaction.Type) []infoResponse {
	keys := category.Keys(typ)

	resp := make([]infoResponse, len(keys))
	for i, key := range keys {
		info := category.Lookup(typ, key)
		resp[i] = infoResponse{Key: key, Icon: info.Icon, Label: info.Label}
	}

	return resp
}
