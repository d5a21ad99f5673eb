package pgrepo

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
)

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	const query = `
		INSERT INTO payments (group_id, payer_id, payee_id, amount, currency, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, payer_id, payee_id, amount, currency, notes, payment_date`

	var payment domain.Payment
	err := r.db.QueryRow(ctx, query,
		args.GroupID, args.PayerID, args.PayeeID, args.Amount, args.Currency, args.Notes,
	).Scan(
		&payment.ID, &payment.GroupID, &payment.PayerID, &payment.PayeeID,
		&payment.Amount, &payment.Currency, &payment.Notes, &payment.PaymentDate,
	)
	if err != nil {
		return nil, convertErr(err, "creating payment in group %d", args.GroupID)
	}
	return &payment, nil
}

// GetByGroupID возвращает историю платежей группы, новые первыми.
func (r *PaymentRepository) GetByGroupID(ctx context.Context, groupID int64) ([]domain.Payment, error) {
	const query = `
		SELECT id, group_id, payer_id, payee_id, amount, currency, notes, payment_date
		FROM payments
		WHERE group_id = $1
		ORDER BY payment_date DESC`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, convertErr(err, "getting payments of group %d", groupID)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if scanErr := rows.Scan(
			&payment.ID, &payment.GroupID, &payment.PayerID, &payment.PayeeID,
			&payment.Amount, &payment.Currency, &payment.Notes, &payment.PaymentDate,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment row")
		}
		payments = append(payments, payment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating payment rows")
	}
	return payments, nil
}
