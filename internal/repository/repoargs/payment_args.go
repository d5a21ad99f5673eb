package repoargs

import "github.com/shopspring/decimal"

type CreatePayment struct {
	GroupID  int64
	PayerID  int64
	PayeeID  int64
	Amount   decimal.Decimal
	Currency string
	Notes    string
}
