package transaction

import (
	"time"

	"github.com/rmoreira/contas/internal/transaction"
)

type transactionResponse struct {
	ID                 string                    `json:"id"`
	Type               transaction.Type          `json:"type"`
	Category           string                    `json:"category"`
	Amount             transaction.Cents         `json:"amount"`
	Date               transaction.Date          `json:"date"`
	Description        string                    `json:"description"`
	CreatedAt          time.Time                 `json:"createdAt"`
	PaymentMethod      transaction.PaymentMethod `json:"paymentMethod,omitempty"`
	Installments       int                       `json:"installments"`
	CurrentInstallment int                       `json:"currentInstallment,omitempty"`
	OriginalAmount     transaction.Cents         `json:"originalAmount,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                 tx.ID,
		Type:               tx.Type,
		Category:           tx.Category,
		Amount:             tx.Amount,
		Date:               tx.Date,
		Description:        tx.Description,
		CreatedAt:          tx.CreatedAt,
		PaymentMethod:      tx.PaymentMethod,
		Installments:       tx.Installments,
		CurrentInstallment: tx.CurrentInstallment,
		OriginalAmount:     tx.OriginalAmount,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
