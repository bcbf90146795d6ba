package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rmoreira/contas/internal/transaction"
)

func TestService_Add_Validation(t *testing.T) {
	type testCase struct {
		name    string
		params  transaction.CreateParams
		wantErr error
	}

	tests := []testCase{
		{
			name: "InvalidType",
			params: transaction.CreateParams{
				Type:   "transfer",
				Amount: 1000,
				Date:   "2024-01-15",
			},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Type:   transaction.TypeExpense,
				Amount: 0,
				Date:   "2024-01-15",
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Type:   transaction.TypeIncome,
				Amount: -500,
				Date:   "2024-01-15",
			},
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name: "BadDate",
			params: transaction.CreateParams{
				Type:   transaction.TypeExpense,
				Amount: 1000,
				Date:   "15/01/2024",
			},
			wantErr: transaction.ErrInvalidDate,
		},
		{
			name: "TooManyInstallments",
			params: transaction.CreateParams{
				Type:          transaction.TypeExpense,
				Amount:        1000,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentCredit,
				Installments:  transaction.MaxInstallments + 1,
			},
			wantErr: transaction.ErrInvalidInstallmentCount,
		},
		{
			name: "NegativeInstallments",
			params: transaction.CreateParams{
				Type:          transaction.TypeExpense,
				Amount:        1000,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentCredit,
				Installments:  -1,
			},
			wantErr: transaction.ErrInvalidInstallmentCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The repository must never be touched on invalid input.
			repo := transaction.NewMockRepository(ctrl)
			svc := transaction.NewService(repo)

			got, err := svc.Add(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_Add_SingleRecord(t *testing.T) {
	type testCase struct {
		name   string
		params transaction.CreateParams
	}

	tests := []testCase{
		{
			name: "Income",
			params: transaction.CreateParams{
				Type:        transaction.TypeIncome,
				Category:    "salario",
				Amount:      500000,
				Date:        "2024-01-15",
				Description: "Salário",
			},
		},
		{
			name: "IncomeDropsPaymentMethod",
			params: transaction.CreateParams{
				Type:          transaction.TypeIncome,
				Category:      "freelance",
				Amount:        80000,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentCredit,
				Installments:  12,
			},
		},
		{
			name: "DebitExpenseIgnoresInstallments",
			params: transaction.CreateParams{
				Type:          transaction.TypeExpense,
				Category:      "alimentacao",
				Amount:        4500,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentDebit,
				Installments:  6,
			},
		},
		{
			name: "CreditSingleInstallment",
			params: transaction.CreateParams{
				Type:          transaction.TypeExpense,
				Category:      "compras",
				Amount:        9900,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentCredit,
				Installments:  1,
			},
		},
		{
			name: "ZeroInstallmentsMeansOne",
			params: transaction.CreateParams{
				Type:          transaction.TypeExpense,
				Category:      "compras",
				Amount:        9900,
				Date:          "2024-01-15",
				PaymentMethod: transaction.PaymentCredit,
				Installments:  0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

			svc := transaction.NewService(repo)

			got, err := svc.Add(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, got, 1)

			tx := got[0]
			assert.Equal(t, tt.params.Amount, tx.Amount)
			assert.Equal(t, tt.params.Date, tx.Date)
			assert.Equal(t, 1, tx.Installments)
			assert.Zero(t, tx.CurrentInstallment)
			assert.Zero(t, tx.OriginalAmount)

			if tt.params.Type == transaction.TypeIncome {
				assert.Empty(t, tx.PaymentMethod)
			}
		})
	}
}

func TestService_Add_InstallmentExpansion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var persisted []*transaction.Transaction

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			persisted = txs
			return nil
		})

	svc := transaction.NewService(repo)

	got, err := svc.Add(context.Background(), transaction.CreateParams{
		Type:          transaction.TypeExpense,
		Category:      "compras",
		Amount:        1200,
		Date:          "2024-01-15",
		Description:   "  Fone de ouvido  ",
		PaymentMethod: transaction.PaymentCredit,
		Installments:  3,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, persisted, got)

	var sum transaction.Cents

	for i, tx := range got {
		sum += tx.Amount

		assert.Equal(t, transaction.TypeExpense, tx.Type)
		assert.Equal(t, transaction.PaymentCredit, tx.PaymentMethod)
		assert.Equal(t, "Fone de ouvido", tx.Description)
		assert.Equal(t, 3, tx.Installments)
		assert.Equal(t, i+1, tx.CurrentInstallment)
		assert.Equal(t, transaction.Cents(1200), tx.OriginalAmount)
	}

	assert.Equal(t, transaction.Cents(1200), sum)
	assert.Equal(t, transaction.Date("2024-01-15"), got[0].Date)
	assert.Equal(t, transaction.Date("2024-02-15"), got[1].Date)
	assert.Equal(t, transaction.Date("2024-03-15"), got[2].Date)
}

func TestService_Add_InstallmentRemainderOnFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo)

	// 1000 over 3 does not divide evenly; the first part takes the extra cent.
	got, err := svc.Add(context.Background(), transaction.CreateParams{
		Type:          transaction.TypeExpense,
		Category:      "compras",
		Amount:        1000,
		Date:          "2024-05-10",
		PaymentMethod: transaction.PaymentCredit,
		Installments:  3,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, transaction.Cents(334), got[0].Amount)
	assert.Equal(t, transaction.Cents(333), got[1].Amount)
	assert.Equal(t, transaction.Cents(333), got[2].Amount)
}

func TestService_Add_InstallmentDateClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo)

	got, err := svc.Add(context.Background(), transaction.CreateParams{
		Type:          transaction.TypeExpense,
		Category:      "compras",
		Amount:        3000,
		Date:          "2024-01-31",
		PaymentMethod: transaction.PaymentCredit,
		Installments:  3,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, transaction.Date("2024-01-31"), got[0].Date)
	assert.Equal(t, transaction.Date("2024-02-29"), got[1].Date)
	assert.Equal(t, transaction.Date("2024-03-31"), got[2].Date)
}

func TestService_Add_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	svc := transaction.NewService(repo)

	got, err := svc.Add(context.Background(), transaction.CreateParams{
		Type:   transaction.TypeExpense,
		Amount: 1000,
		Date:   "2024-01-15",
	})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := []*transaction.Transaction{
		{ID: "a", Type: transaction.TypeExpense, Category: "lazer", Date: "2024-03-02", Amount: 100},
		{ID: "b", Type: transaction.TypeIncome, Category: "salario", Date: "2024-03-01", Amount: 500},
		{ID: "c", Type: transaction.TypeExpense, Category: "moradia", Date: "2024-02-10", Amount: 300},
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(ledger, nil)

	svc := transaction.NewService(repo)

	got, err := svc.List(context.Background(), transaction.Filter{Month: "2024-03", Type: transaction.TypeExpense})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestService_List_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load error"))

	svc := transaction.NewService(repo)

	got, err := svc.List(context.Background(), transaction.Filter{})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)

	svc := transaction.NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), "tx-1"))
}
