package pgrepo

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type ExpenseRepository struct {
	db uow.DBTX
}

func NewExpenseRepository(db uow.DBTX) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) CreateExpense(ctx context.Context, args repoargs.CreateExpense) (*domain.Expense, error) {
	const query = `
		INSERT INTO expenses (group_id, title, description, paid_by, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, group_id, title, description, paid_by, amount`

	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, args.GroupID, args.Title, args.Description, args.PaidBy, args.Amount).
		Scan(
			&expense.ID, &expense.CreatedAt, &expense.UpdatedAt, &expense.GroupID,
			&expense.Title, &expense.Description, &expense.PaidBy, &expense.Amount,
		)
	if err != nil {
		return nil, convertErr(err, "creating expense in group %d", args.GroupID)
	}
	return &expense, nil
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, args repoargs.UpdateExpense) (*domain.Expense, error) {
	const query = `
		UPDATE expenses
		SET title = $2, description = $3, paid_by = $4, amount = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, created_at, updated_at, group_id, title, description, paid_by, amount`

	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, args.ID, args.Title, args.Description, args.PaidBy, args.Amount).
		Scan(
			&expense.ID, &expense.CreatedAt, &expense.UpdatedAt, &expense.GroupID,
			&expense.Title, &expense.Description, &expense.PaidBy, &expense.Amount,
		)
	if err != nil {
		return nil, convertErr(err, "updating expense %d", args.ID)
	}
	return &expense, nil
}

// DeleteExpense удаляет трату. Ее доли удаляются каскадом по внешнему ключу.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id int64) error {
	const query = `DELETE FROM expenses WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "deleting expense %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting expense %d", id)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id int64) (*domain.Expense, error) {
	const query = `
		SELECT id, created_at, updated_at, group_id, title, description, paid_by, amount
		FROM expenses
		WHERE id = $1`

	var expense domain.Expense
	err := r.db.QueryRow(ctx, query, id).
		Scan(
			&expense.ID, &expense.CreatedAt, &expense.UpdatedAt, &expense.GroupID,
			&expense.Title, &expense.Description, &expense.PaidBy, &expense.Amount,
		)
	if err != nil {
		return nil, convertErr(err, "finding expense %d", id)
	}
	return &expense, nil
}

func (r *ExpenseRepository) GetByGroupID(ctx context.Context, groupID int64) ([]domain.Expense, error) {
	const query = `
		SELECT id, created_at, updated_at, group_id, title, description, paid_by, amount
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, convertErr(err, "getting expenses of group %d", groupID)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if scanErr := rows.Scan(
			&expense.ID, &expense.CreatedAt, &expense.UpdatedAt, &expense.GroupID,
			&expense.Title, &expense.Description, &expense.PaidBy, &expense.Amount,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning expense row")
		}
		expenses = append(expenses, expense)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating expense rows")
	}
	return expenses, nil
}

// GetRecentByUserID возвращает последние limit трат по всем группам юзера,
// новые сверху.
func (r *ExpenseRepository) GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]repoargs.RecentExpense, error) {
	const query = `
		SELECT e.id, e.created_at, e.updated_at, e.group_id, e.title, e.description, e.paid_by, e.amount,
		       u.username, g.name
		FROM expenses e
		JOIN users u ON u.id = e.paid_by
		JOIN groups g ON g.id = e.group_id
		WHERE e.group_id IN (SELECT group_id FROM group_members WHERE user_id = $1)
		ORDER BY e.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, convertErr(err, "getting recent expenses of user %d", userID)
	}
	defer rows.Close()

	var recent []repoargs.RecentExpense
	for rows.Next() {
		var item repoargs.RecentExpense
		if scanErr := rows.Scan(
			&item.Expense.ID, &item.Expense.CreatedAt, &item.Expense.UpdatedAt, &item.Expense.GroupID,
			&item.Expense.Title, &item.Expense.Description, &item.Expense.PaidBy, &item.Expense.Amount,
			&item.PaidByUsername, &item.GroupName,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning recent expense row")
		}
		recent = append(recent, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating recent expense rows")
	}
	return recent, nil
}

// CreateShares вставляет доли траты батчем. Результат каждой вставки отдается
// в fn в порядке исходного среза.
func (r *ExpenseRepository) CreateShares(ctx context.Context, shares []repoargs.CreateShare, fn repoargs.ShareBatchQueryRow) {
	const query = `
		INSERT INTO expense_shares (expense_id, user_id, share_amount)
		VALUES ($1, $2, $3)`

	batch := new(pgx.Batch)
	for _, share := range shares {
		batch.Queue(query, share.ExpenseID, share.UserID, share.ShareAmount)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i := range shares {
		_, err := results.Exec()
		fn(i, convertErr(err, "creating expense share"))
	}
}

func (r *ExpenseRepository) DeleteShares(ctx context.Context, expenseID int64) error {
	const query = `DELETE FROM expense_shares WHERE expense_id = $1`

	_, err := r.db.Exec(ctx, query, expenseID)
	return convertErr(err, "deleting shares of expense %d", expenseID)
}

func (r *ExpenseRepository) GetSharesByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseShare, error) {
	const query = `
		SELECT expense_id, user_id, share_amount
		FROM expense_shares
		WHERE expense_id = $1`

	return r.queryShares(ctx, query, expenseID)
}

// GetSharesByGroupID возвращает доли всех трат группы - вход полного пересчета
// балансов.
func (r *ExpenseRepository) GetSharesByGroupID(ctx context.Context, groupID int64) ([]domain.ExpenseShare, error) {
	const query = `
		SELECT es.expense_id, es.user_id, es.share_amount
		FROM expense_shares es
		JOIN expenses e ON e.id = es.expense_id
		WHERE e.group_id = $1`

	return r.queryShares(ctx, query, groupID)
}

func (r *ExpenseRepository) queryShares(ctx context.Context, query string, arg any) ([]domain.ExpenseShare, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, convertErr(err, "getting expense shares")
	}
	defer rows.Close()

	var shares []domain.ExpenseShare
	for rows.Next() {
		var share domain.ExpenseShare
		if scanErr := rows.Scan(&share.ExpenseID, &share.UserID, &share.ShareAmount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning expense share row")
		}
		shares = append(shares, share)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating expense share rows")
	}
	return shares, nil
}
