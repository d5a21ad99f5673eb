package ledger

import (
	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregate пересчитывает балансы группы с нуля по полному журналу трат и долей.
//
// Параметры:
//   - members: текущие участники группы;
//   - expenses: все траты группы;
//   - shares: все доли по этим тратам.
//
// Алгоритм работы:
//  1. Для каждого участника заводится нулевой аккумулятор totalPaid/totalOwed.
//  2. Сумма каждой траты прибавляется к totalPaid плательщика.
//  3. Каждая доля прибавляется к totalOwed ее владельца.
//  4. NetBalance = TotalPaid - TotalOwed.
//
// Траты и доли, ссылающиеся на юзера вне members (участник вышел из группы после
// оплаты), молча пропускаются - это терпимое нарушение целостности данных, а не
// повод для ошибки. Повторный вызов на неизменных данных дает идентичный
// результат; порядок результата повторяет порядок members. На пустом members
// возвращается пустой срез.
func Aggregate(members []domain.Member, expenses []domain.Expense, shares []domain.ExpenseShare) []domain.Balance {
	balances := make([]domain.Balance, len(members))
	index := make(map[int64]int, len(members))
	for i, member := range members {
		balances[i] = domain.Balance{
			UserID:     member.UserID,
			Username:   member.Username,
			TotalPaid:  decimal.Zero,
			TotalOwed:  decimal.Zero,
			NetBalance: decimal.Zero,
		}
		index[member.UserID] = i
	}

	for _, expense := range expenses {
		if i, ok := index[expense.PaidBy]; ok {
			balances[i].TotalPaid = balances[i].TotalPaid.Add(expense.Amount)
		}
	}
	for _, share := range shares {
		if i, ok := index[share.UserID]; ok {
			balances[i].TotalOwed = balances[i].TotalOwed.Add(share.ShareAmount)
		}
	}

	for i := range balances {
		balances[i].NetBalance = balances[i].TotalPaid.Sub(balances[i].TotalOwed)
	}
	return balances
}
