package pgrepo

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/shopspring/decimal"
)

// BalanceRepository работает с материализованным представлением balances.
// Источник истины - журнал трат/долей/платежей; balances всегда можно
// перестроить заново полным пересчетом.
type BalanceRepository struct {
	db uow.DBTX
}

func NewBalanceRepository(db uow.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// ReplaceForGroup перезаписывает сальдо всех участников группы. Вызывается
// внутри uow-транзакции: срез либо записывается целиком, либо не записывается
// вовсе - частичная запись ломает согласованность разбиения на
// кредиторов/должников.
func (r *BalanceRepository) ReplaceForGroup(ctx context.Context, groupID int64, rows []repoargs.BalanceUpsert) error {
	const query = `
		INSERT INTO balances (group_id, user_id, net_balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id) DO UPDATE
		SET net_balance = EXCLUDED.net_balance, updated_at = now()`

	for _, row := range rows {
		if _, err := r.db.Exec(ctx, query, groupID, row.UserID, row.NetBalance); err != nil {
			return convertErr(err, "syncing balance of user %d in group %d", row.UserID, groupID)
		}
	}
	return nil
}

// ApplyDelta сдвигает сохраненное сальдо юзера на delta. Если строки еще нет,
// она создается от нуля - дельта применяется к тому значению, что есть.
func (r *BalanceRepository) ApplyDelta(ctx context.Context, groupID, userID int64, delta decimal.Decimal) error {
	const query = `
		INSERT INTO balances (group_id, user_id, net_balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id) DO UPDATE
		SET net_balance = balances.net_balance + EXCLUDED.net_balance, updated_at = now()`

	_, err := r.db.Exec(ctx, query, groupID, userID, delta)
	return convertErr(err, "applying balance delta for user %d in group %d", userID, groupID)
}

// SumByUserID собирает по всем группам юзера суммы положительных и
// отрицательных сальдо из материализованных балансов.
func (r *BalanceRepository) SumByUserID(ctx context.Context, userID int64) (*repoargs.BalanceTotals, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN net_balance > 0 THEN net_balance ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN net_balance < 0 THEN -net_balance ELSE 0 END), 0)
		FROM balances
		WHERE user_id = $1`

	var totals repoargs.BalanceTotals
	if err := r.db.QueryRow(ctx, query, userID).Scan(&totals.OwedToUser, &totals.UserOwes); err != nil {
		return nil, convertErr(err, "summing balances of user %d", userID)
	}
	return &totals, nil
}
