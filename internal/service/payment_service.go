package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/shopspring/decimal"
)

const defaultPaymentCurrency = "USD"

type PaymentService struct {
	uow         uow.UOW
	paymentRepo PaymentRepository
	groupRepo   GroupRepository
}

func NewPaymentService(u uow.UOW) (*PaymentService, error) {
	paymentRepo, paymentRepoErr := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr
	}
	groupRepo, groupRepoErr := uow.GetRepositoryAs[GroupRepository](u, uow.RepositoryName(repoargs.GroupRepoName))
	if groupRepoErr != nil {
		return nil, groupRepoErr
	}
	return &PaymentService{
		uow:         u,
		paymentRepo: paymentRepo,
		groupRepo:   groupRepo,
	}, nil
}

type CreatePaymentArgs struct {
	GroupID  int64
	PayerID  int64
	PayeeID  int64
	Amount   decimal.Decimal
	Currency string
	Notes    string
}

// Create записывает платеж и применяет его к материализованным балансам.
//
// Сальдо плательщика сдвигается на +amount (его долг уменьшается), сальдо
// получателя - на -amount. Это инкрементальная дельта поверх сохраненных
// значений, журнал трат не перечитывается: перед использованием дельт по группе
// должен был пройти хотя бы один полный пересчет.
//
// Вставка платежа и обе правки балансов выполняются одной транзакцией -
// читатель не может увидеть состояние, где сдвинута лишь одна сторона.
//
// Платеж самому себе отклоняется с domain.ErrSelfPayment: по смыслу это no-op,
// но скорее всего ошибка клиента.
func (s *PaymentService) Create(ctx context.Context, args CreatePaymentArgs) (*domain.Payment, error) {
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if args.PayerID == args.PayeeID {
		return nil, domain.ErrSelfPayment
	}

	for _, userID := range []int64{args.PayerID, args.PayeeID} {
		isMember, memberErr := s.groupRepo.IsMember(ctx, args.GroupID, userID)
		if memberErr != nil {
			return nil, fmt.Errorf("creating payment: %w", memberErr)
		}
		if !isMember {
			return nil, domain.ErrNotGroupMember
		}
	}

	currency := args.Currency
	if currency == "" {
		currency = defaultPaymentCurrency
	}

	var payment *domain.Payment
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}
		balanceRepo, balanceRepoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if balanceRepoErr != nil {
			return balanceRepoErr //nolint:wrapcheck
		}

		var createErr error
		payment, createErr = paymentRepo.CreatePayment(c, repoargs.CreatePayment{
			GroupID:  args.GroupID,
			PayerID:  args.PayerID,
			PayeeID:  args.PayeeID,
			Amount:   args.Amount,
			Currency: currency,
			Notes:    args.Notes,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if err := balanceRepo.ApplyDelta(c, args.GroupID, args.PayerID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		return balanceRepo.ApplyDelta(c, args.GroupID, args.PayeeID, args.Amount.Neg()) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating payment: %w", txErr)
	}
	return payment, nil
}

func (s *PaymentService) GetByGroupID(ctx context.Context, groupID int64) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}
