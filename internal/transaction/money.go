package transaction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in minor currency units. Arithmetic on
// amounts is exact integer arithmetic; decimal conversion happens only at
// the serialization and parsing boundaries.
type Cents int64

// ParseCents parses a decimal amount string into cents. Both "1234.56" and
// the pt-BR forms "1.234,56" / "1234,56" are accepted. A third decimal
// digit is rounded half up.
func ParseCents(s string) (Cents, error) {
	clean := strings.TrimSpace(s)
	if strings.Contains(clean, ",") {
		// European format: dots are thousand separators.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return Cents(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()), nil
}

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount with two decimal places, e.g. "1500.00".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a plain decimal number so the durable
// blob stays readable as currency ("amount": 1500.5).
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().String()), nil
}

// UnmarshalJSON reads a decimal number back into cents, rounding anything
// beyond two decimal places half up.
func (c *Cents) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return ErrStorageCorrupt
	}

	*c = Cents(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart())

	return nil
}
