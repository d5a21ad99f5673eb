package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/service"
)

// Интерфейсы сервисов объявлены на стороне транспорта ради моков в тестах
// хэндлеров.

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type GroupServicer interface {
	Create(ctx context.Context, args service.CreateGroupArgs) (*domain.Group, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Group, error)
	Details(ctx context.Context, groupID int64) (*service.GroupDetails, error)
	AddMemberByUsername(ctx context.Context, groupID int64, username string) (*domain.Member, error)
	RemoveMember(ctx context.Context, groupID, userID int64) error
	UpdateMemberRole(ctx context.Context, groupID, actorID, memberID int64, role domain.MemberRoleType) error
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type ExpenseServicer interface {
	Create(ctx context.Context, args service.CreateExpenseArgs) (*domain.Expense, error)
	Update(ctx context.Context, args service.UpdateExpenseArgs) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
	Details(ctx context.Context, id int64) (*service.ExpenseDetails, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]domain.Expense, error)
	Recent(ctx context.Context, userID int64) ([]service.RecentExpense, error)
}

type PaymentServicer interface {
	Create(ctx context.Context, args service.CreatePaymentArgs) (*domain.Payment, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]domain.Payment, error)
}

type BalanceServicer interface {
	GroupBalances(ctx context.Context, groupID int64) (*service.GroupBalances, error)
	UserBalance(ctx context.Context, groupID, userID int64) (*domain.Balance, error)
	OverallSummary(ctx context.Context, userID int64) (*service.OverallSummary, error)
}

type CurrencyServicer interface {
	Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}
