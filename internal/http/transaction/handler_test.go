package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	txhttp "github.com/rmoreira/contas/internal/http/transaction"
	"github.com/rmoreira/contas/internal/transaction"
)

func newTestServer(t *testing.T, repo transaction.Repository) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/transactions", txhttp.NewHandler(transaction.NewService(repo)).Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			for i, tx := range txs {
				tx.ID = string(rune('a' + i))
			}
			return nil
		})

	srv := newTestServer(t, repo)

	body := `{
		"type": "expense",
		"category": "compras",
		"amount": 12.00,
		"date": "2024-01-31",
		"description": "Fone",
		"paymentMethod": "credit",
		"installments": 3
	}`

	resp, err := http.Post(srv.URL+"/transactions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got []struct {
		ID                 string  `json:"id"`
		Amount             float64 `json:"amount"`
		Date               string  `json:"date"`
		CurrentInstallment int     `json:"currentInstallment"`
		OriginalAmount     float64 `json:"originalAmount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)

	assert.InDelta(t, 4.0, got[0].Amount, 0.001)
	assert.Equal(t, "2024-01-31", got[0].Date)
	assert.Equal(t, 1, got[0].CurrentInstallment)
	assert.InDelta(t, 12.0, got[0].OriginalAmount, 0.001)
	assert.Equal(t, "2024-02-29", got[1].Date)
	assert.Equal(t, "2024-03-31", got[2].Date)
}

func TestHandler_Create_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository calls on invalid input.
	srv := newTestServer(t, transaction.NewMockRepository(ctrl))

	type testCase struct {
		name string
		body string
	}

	tests := []testCase{
		{name: "NotJSON", body: "{"},
		{name: "BadType", body: `{"type":"transfer","amount":10,"date":"2024-01-15"}`},
		{name: "ZeroAmount", body: `{"type":"expense","amount":0,"date":"2024-01-15"}`},
		{name: "BadDate", body: `{"type":"expense","amount":10,"date":"15/01/2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/transactions", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_List_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := []*transaction.Transaction{
		{ID: "b", Type: transaction.TypeExpense, Category: "lazer", Amount: 2000, Date: "2024-04-02"},
		{ID: "a", Type: transaction.TypeIncome, Category: "salario", Amount: 500000, Date: "2024-03-01"},
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(ledger, nil)

	srv := newTestServer(t, repo)

	resp, err := http.Get(srv.URL + "/transactions?month=2024-04&type=expense")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)

	srv := newTestServer(t, repo)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/transactions/tx-1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
