// Package category holds the static registry of category and
// payment-method metadata used by the presentation layers.
package category

import (
	"github.com/rmoreira/contas/internal/transaction"
)

// Info is the display metadata for a category or payment method.
type Info struct {
	Icon  string
	Label string
}

// registry entries keep a stable order for UI population.
type entry struct {
	Key  string
	Info Info
}

var expenseCategories = []entry{
	{"alimentacao", Info{"🍔", "Alimentação"}},
	{"transporte", Info{"🚗", "Transporte"}},
	{"moradia", Info{"🏠", "Moradia"}},
	{"saude", Info{"💊", "Saúde"}},
	{"educacao", Info{"📚", "Educação"}},
	{"lazer", Info{"🎮", "Lazer"}},
	{"compras", Info{"🛒", "Compras"}},
	{"outros-despesa", Info{"📦", "Outros"}},
}

var incomeCategories = []entry{
	{"salario", Info{"💼", "Salário"}},
	{"freelance", Info{"💻", "Freelance"}},
	{"investimentos", Info{"📊", "Investimentos"}},
	{"outros-receita", Info{"💰", "Outros"}},
}

var paymentMethods = []struct {
	Key  transaction.PaymentMethod
	Info Info
}{
	{transaction.PaymentDebit, Info{"💳", "Débito"}},
	{transaction.PaymentCredit, Info{"💳", "Crédito"}},
	{transaction.PaymentCash, Info{"💵", "Dinheiro"}},
	{transaction.PaymentPix, Info{"📱", "Pix"}},
}

// Lookup returns the metadata for a category key. Unknown keys are
// tolerated: they fall back to a generic icon with the raw key as label.
func Lookup(typ transaction.Type, key string) Info {
	for _, e := range forType(typ) {
		if e.Key == key {
			return e.Info
		}
	}

	return Info{Icon: "📋", Label: key}
}

// Keys returns the category keys for a transaction type in display order.
func Keys(typ transaction.Type) []string {
	entries := forType(typ)

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	return keys
}

// KeyForLabel resolves a display label back to its category key. Used by
// the CSV importer, which only sees labels. ok is false for labels not in
// the registry.
func KeyForLabel(typ transaction.Type, label string) (string, bool) {
	for _, e := range forType(typ) {
		if e.Info.Label == label {
			return e.Key, true
		}
	}

	return "", false
}

// Fallback returns the catch-all category for a transaction type.
func Fallback(typ transaction.Type) string {
	if typ == transaction.TypeIncome {
		return "outros-receita"
	}

	return "outros-despesa"
}

// PaymentMethod returns the metadata for a payment method.
func PaymentMethod(pm transaction.PaymentMethod) Info {
	for _, e := range paymentMethods {
		if e.Key == pm {
			return e.Info
		}
	}

	return Info{Icon: "💳", Label: string(pm)}
}

// PaymentMethods returns the known payment methods in display order.
func PaymentMethods() []transaction.PaymentMethod {
	keys := make([]transaction.PaymentMethod, len(paymentMethods))
	for i, e := range paymentMethods {
		keys[i] = e.Key
	}

	return keys
}

func forType(typ transaction.Type) []entry {
	if typ == transaction.TypeIncome {
		return incomeCategories
	}

	return expenseCategories
}
