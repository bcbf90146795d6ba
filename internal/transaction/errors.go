package transaction

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts. Sign is carried by
	// the transaction type, never by the stored value.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidDate rejects dates that are not valid YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidType rejects transaction types other than income/expense.
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidInstallmentCount rejects installment counts outside [1, 60].
	ErrInvalidInstallmentCount = errors.New("installment count out of range")

	// ErrStorageCorrupt is returned when the durable ledger blob cannot be
	// decoded. The caller decides between failing and resetting to empty.
	ErrStorageCorrupt = errors.New("ledger storage corrupt")
)
