package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
}

type Group struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	CreatedBy   int64
}

// Member - участник группы. Снимок на момент выборки, в расчетах не мутирует.
type Member struct {
	UserID   int64
	Username string
	Role     MemberRoleType
}

type Expense struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	GroupID     int64
	Title       string
	Description string
	PaidBy      int64
	Amount      decimal.Decimal
}

// ExpenseShare - доля одного участника в одной трате. Сумма долей по трате равна
// сумме самой траты в пределах допуска (проверяется при записи).
type ExpenseShare struct {
	ExpenseID   int64
	UserID      int64
	ShareAmount decimal.Decimal
}

type Payment struct {
	ID          int64
	GroupID     int64
	PayerID     int64
	PayeeID     int64
	Amount      decimal.Decimal
	Currency    string
	Notes       string
	PaymentDate time.Time
}

// Balance - позиция участника группы: сколько заплатил, сколько должен и итоговое
// сальдо. NetBalance > 0 - участнику должны, < 0 - должен он.
type Balance struct {
	UserID     int64
	Username   string
	TotalPaid  decimal.Decimal
	TotalOwed  decimal.Decimal
	NetBalance decimal.Decimal
}

// Summary - агрегаты группы поверх среза Balance.
type Summary struct {
	TotalExpenses decimal.Decimal
	TotalPaid     decimal.Decimal
	IsBalanced    bool
	Creditors     []Balance
	Debtors       []Balance
}
