package repoargs

import (
	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateExpense struct {
	GroupID     int64
	Title       string
	Description string
	PaidBy      int64
	Amount      decimal.Decimal
}

type UpdateExpense struct {
	ID          int64
	Title       string
	Description string
	PaidBy      int64
	Amount      decimal.Decimal
}

// CreateShare - одна строка expense_shares. Вставляются батчем на каждую трату.
type CreateShare struct {
	ExpenseID   int64
	UserID      int64
	ShareAmount decimal.Decimal
}

type ShareBatchQueryRow func(i int, err error)

// RecentExpense - трата ленты активности с подтянутыми именем плательщика и
// названием группы.
type RecentExpense struct {
	Expense        domain.Expense
	PaidByUsername string
	GroupName      string
}
