package ui

import (
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/reelspin/parameter"
)

// BalancePanel shows a currency amount, nothing in the game debits or credits it
type BalancePanel struct {
	balance decimal.Decimal
	symbol  string
}

// NewBalancePanel creates a panel showing balance in the default currency
func NewBalancePanel(balance decimal.Decimal) *BalancePanel {
	return &BalancePanel{balance: balance, symbol: parameter.CurrencySymbol}
}

// Balance returns the displayed amount
func (b *BalancePanel) Balance() decimal.Decimal { return b.balance }

// SetBalance replaces the displayed amount
func (b *BalancePanel) SetBalance(v decimal.Decimal) { b.balance = v }

// Text renders the amount, whole values without decimals, fractions to two places
func (b *BalancePanel) Text() string {
	return FormatMoney(b.symbol, b.balance)
}

// FormatMoney renders v prefixed by the currency symbol
func FormatMoney(symbol string, v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return symbol + v.StringFixed(0)
	}
	return symbol + v.StringFixed(2)
}
