package service

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type GroupRepository interface {
	CreateGroup(ctx context.Context, args repoargs.CreateGroup) (*domain.Group, error)
	FindByID(ctx context.Context, id int64) (*domain.Group, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Group, error)
	AddMember(ctx context.Context, args repoargs.AddGroupMember) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
	GetMembers(ctx context.Context, groupID int64) ([]domain.Member, error)
	GetMemberRole(ctx context.Context, groupID, userID int64) (domain.MemberRoleType, error)
	UpdateMemberRole(ctx context.Context, groupID, userID int64, role domain.MemberRoleType) error
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type ExpenseRepository interface {
	CreateExpense(ctx context.Context, args repoargs.CreateExpense) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, args repoargs.UpdateExpense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Expense, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]domain.Expense, error)
	GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]repoargs.RecentExpense, error)
	CreateShares(ctx context.Context, shares []repoargs.CreateShare, fn repoargs.ShareBatchQueryRow)
	DeleteShares(ctx context.Context, expenseID int64) error
	GetSharesByExpenseID(ctx context.Context, expenseID int64) ([]domain.ExpenseShare, error)
	GetSharesByGroupID(ctx context.Context, groupID int64) ([]domain.ExpenseShare, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	GetByGroupID(ctx context.Context, groupID int64) ([]domain.Payment, error)
}

type BalanceRepository interface {
	ReplaceForGroup(ctx context.Context, groupID int64, rows []repoargs.BalanceUpsert) error
	ApplyDelta(ctx context.Context, groupID, userID int64, delta decimal.Decimal) error
	SumByUserID(ctx context.Context, userID int64) (*repoargs.BalanceTotals, error)
}
