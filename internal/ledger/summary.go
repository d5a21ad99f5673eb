package ledger

import (
	"sort"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize сводит срез балансов в агрегаты группы.
//
// TotalExpenses - сумма totalOwed по всем участникам, TotalPaid - сумма
// totalPaid. Для данных, прошедших ValidateSplit при записи, обе суммы обязаны
// сходиться: IsBalanced == false сигнализирует о порче данных или обходе
// валидации и носит диагностический характер.
//
// Creditors - балансы с NetBalance > 0 по убыванию, Debtors - с NetBalance < 0
// по возрастанию (самый большой долг первым). Нулевые балансы не попадают ни в
// один из списков.
func Summarize(balances []domain.Balance) domain.Summary {
	totalExpenses := decimal.Zero
	totalPaid := decimal.Zero

	var creditors, debtors []domain.Balance
	for _, balance := range balances {
		totalExpenses = totalExpenses.Add(balance.TotalOwed)
		totalPaid = totalPaid.Add(balance.TotalPaid)

		switch {
		case balance.NetBalance.IsPositive():
			creditors = append(creditors, balance)
		case balance.NetBalance.IsNegative():
			debtors = append(debtors, balance)
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].NetBalance.GreaterThan(creditors[j].NetBalance)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].NetBalance.LessThan(debtors[j].NetBalance)
	})

	return domain.Summary{
		TotalExpenses: totalExpenses,
		TotalPaid:     totalPaid,
		IsBalanced:    totalExpenses.Sub(totalPaid).Abs().LessThan(amountTolerance),
		Creditors:     creditors,
		Debtors:       debtors,
	}
}
