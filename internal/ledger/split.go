// Package ledger содержит чистую расчетную часть сервиса: валидацию разбивки
// трат, агрегацию балансов группы и сводку кредиторов/должников. Пакет не знает
// про хранилище и транспорт, работает только над переданными срезами.
package ledger

import (
	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
)

// amountTolerance - абсолютный допуск при сравнении денежных сумм. Страхует от
// остаточной погрешности округления, но не заменяет decimal-арифметику.
var amountTolerance = decimal.NewFromFloat(0.01)

// SplitInput - пользовательская (custom) доля одного участника в трате.
type SplitInput struct {
	UserID int64
	Amount decimal.Decimal
}

// Share - материализованная доля для записи в expense_shares.
type Share struct {
	UserID int64
	Amount decimal.Decimal
}

// ValidateSplit проверяет разбивку траты до какой-либо записи в базу.
//
// Правила:
//   - total должен быть > 0 (domain.ErrInvalidAmount);
//   - memberIDs не пуст (domain.ErrEmptyMemberSet) и каждый id состоит в группе
//     (domain.ErrInvalidMember);
//   - при splits == nil действует равная разбивка, дополнительных проверок нет;
//   - при заданных splits каждый split.UserID обязан входить в memberIDs
//     (domain.ErrInvalidMember), а сумма долей - совпадать с total в пределах
//     amountTolerance (domain.ErrSplitMismatch).
//
// Функция чистая, побочных эффектов не имеет.
func ValidateSplit(total decimal.Decimal, memberIDs []int64, splits []SplitInput, groupMemberIDs []int64) error {
	if !total.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if len(memberIDs) == 0 {
		return domain.ErrEmptyMemberSet
	}

	groupSet := make(map[int64]struct{}, len(groupMemberIDs))
	for _, id := range groupMemberIDs {
		groupSet[id] = struct{}{}
	}
	memberSet := make(map[int64]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		if _, ok := groupSet[id]; !ok {
			return domain.ErrInvalidMember
		}
		memberSet[id] = struct{}{}
	}

	if splits == nil {
		return nil
	}

	sum := decimal.Zero
	for _, split := range splits {
		if _, ok := memberSet[split.UserID]; !ok {
			return domain.ErrInvalidMember
		}
		sum = sum.Add(split.Amount)
	}
	if sum.Sub(total).Abs().GreaterThan(amountTolerance) {
		return domain.ErrSplitMismatch
	}
	return nil
}

// Shares материализует доли участников по провалидированной разбивке.
//
// При splits == nil каждый участник получает total / len(memberIDs). Деление
// выполняется decimal-делением без распределения остаточных копеек по
// участникам: при неделимых суммах (100 на троих) сумма долей сходится с total
// в пределах amountTolerance, а не копейка в копейку. Порядок долей повторяет
// порядок memberIDs.
func Shares(total decimal.Decimal, memberIDs []int64, splits []SplitInput) []Share {
	shares := make([]Share, 0, len(memberIDs))

	if splits == nil {
		perMember := total.Div(decimal.NewFromInt(int64(len(memberIDs))))
		for _, id := range memberIDs {
			shares = append(shares, Share{UserID: id, Amount: perMember})
		}
		return shares
	}

	splitByUser := make(map[int64]decimal.Decimal, len(splits))
	for _, split := range splits {
		splitByUser[split.UserID] = split.Amount
	}
	for _, id := range memberIDs {
		shares = append(shares, Share{UserID: id, Amount: splitByUser[id]})
	}
	return shares
}
