package ledger

import (
	"testing"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(ids ...int64) []domain.Member {
	ms := make([]domain.Member, len(ids))
	for i, id := range ids {
		ms[i] = domain.Member{UserID: id, Username: string(rune('a' + i)), Role: domain.MemberRoleMember}
	}
	return ms
}

func TestAggregate(t *testing.T) {
	// Трата 90 оплачена юзером 1, поровну на троих.
	expenses := []domain.Expense{
		{ID: 10, GroupID: 1, PaidBy: 1, Amount: decimal.NewFromFloat(90)},
	}
	shares := []domain.ExpenseShare{
		{ExpenseID: 10, UserID: 1, ShareAmount: decimal.NewFromFloat(30)},
		{ExpenseID: 10, UserID: 2, ShareAmount: decimal.NewFromFloat(30)},
		{ExpenseID: 10, UserID: 3, ShareAmount: decimal.NewFromFloat(30)},
	}

	balances := Aggregate(members(1, 2, 3), expenses, shares)
	require.Len(t, balances, 3)

	assert.True(t, balances[0].TotalPaid.Equal(decimal.NewFromFloat(90)))
	assert.True(t, balances[0].NetBalance.Equal(decimal.NewFromFloat(60)))
	assert.True(t, balances[1].NetBalance.Equal(decimal.NewFromFloat(-30)))
	assert.True(t, balances[2].NetBalance.Equal(decimal.NewFromFloat(-30)))
}

// Сохранение денег: для провалидированных долей сумма totalPaid равна сумме
// totalOwed по группе, сводка всегда сбалансирована.
func TestAggregate_Conservation(t *testing.T) {
	expenses := []domain.Expense{
		{ID: 1, PaidBy: 1, Amount: decimal.NewFromFloat(100)},
		{ID: 2, PaidBy: 2, Amount: decimal.NewFromFloat(33.33)},
		{ID: 3, PaidBy: 3, Amount: decimal.NewFromFloat(0.07)},
	}
	var shares []domain.ExpenseShare
	for _, expense := range expenses {
		for _, share := range Shares(expense.Amount, []int64{1, 2, 3}, nil) {
			shares = append(shares, domain.ExpenseShare{
				ExpenseID:   expense.ID,
				UserID:      share.UserID,
				ShareAmount: share.Amount,
			})
		}
	}

	balances := Aggregate(members(1, 2, 3), expenses, shares)

	paid := decimal.Zero
	owed := decimal.Zero
	for _, balance := range balances {
		paid = paid.Add(balance.TotalPaid)
		owed = owed.Add(balance.TotalOwed)
	}
	assert.True(t, paid.Sub(owed).Abs().LessThan(amountTolerance))
	assert.True(t, Summarize(balances).IsBalanced)
}

// Повторный прогон на неизменных данных обязан дать идентичный результат.
func TestAggregate_Idempotent(t *testing.T) {
	ms := members(1, 2)
	expenses := []domain.Expense{{ID: 1, PaidBy: 1, Amount: decimal.NewFromFloat(50)}}
	shares := []domain.ExpenseShare{
		{ExpenseID: 1, UserID: 1, ShareAmount: decimal.NewFromFloat(25)},
		{ExpenseID: 1, UserID: 2, ShareAmount: decimal.NewFromFloat(25)},
	}

	first := Aggregate(ms, expenses, shares)
	second := Aggregate(ms, expenses, shares)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].UserID, second[i].UserID)
		assert.True(t, first[i].NetBalance.Equal(second[i].NetBalance))
		assert.True(t, first[i].TotalPaid.Equal(second[i].TotalPaid))
		assert.True(t, first[i].TotalOwed.Equal(second[i].TotalOwed))
	}
}

// Трата с плательщиком, покинувшим группу, не роняет агрегацию: ее сумма просто
// не попадает ни в чей totalPaid. Осиротевшие доли пропускаются так же.
func TestAggregate_OrphanedPayer(t *testing.T) {
	expenses := []domain.Expense{
		{ID: 1, PaidBy: 99, Amount: decimal.NewFromFloat(60)},
	}
	shares := []domain.ExpenseShare{
		{ExpenseID: 1, UserID: 1, ShareAmount: decimal.NewFromFloat(20)},
		{ExpenseID: 1, UserID: 2, ShareAmount: decimal.NewFromFloat(20)},
		{ExpenseID: 1, UserID: 99, ShareAmount: decimal.NewFromFloat(20)},
	}

	balances := Aggregate(members(1, 2), expenses, shares)
	require.Len(t, balances, 2)

	for _, balance := range balances {
		assert.True(t, balance.TotalPaid.IsZero())
		assert.True(t, balance.TotalOwed.Equal(decimal.NewFromFloat(20)))
	}
}

func TestAggregate_EmptyMembers(t *testing.T) {
	balances := Aggregate(nil, []domain.Expense{{ID: 1, PaidBy: 1, Amount: decimal.NewFromFloat(5)}}, nil)
	assert.Empty(t, balances)
}
