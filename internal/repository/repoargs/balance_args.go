package repoargs

import "github.com/shopspring/decimal"

// BalanceUpsert - одна строка материализованного представления balances.
type BalanceUpsert struct {
	UserID     int64
	NetBalance decimal.Decimal
}

// BalanceTotals - суммы по материализованным балансам юзера во всех группах:
// сколько должны ему (положительные сальдо) и сколько должен он (модуль
// отрицательных).
type BalanceTotals struct {
	OwedToUser decimal.Decimal
	UserOwes   decimal.Decimal
}
