package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/ledger"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BalanceService struct {
	uow         uow.UOW
	balanceRepo BalanceRepository
	groupRepo   GroupRepository
	expenseRepo ExpenseRepository
	log         *logrus.Logger
}

func NewBalanceService(u uow.UOW, l *logrus.Logger) (*BalanceService, error) {
	balanceRepo, balanceRepoErr := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return nil, balanceRepoErr
	}
	groupRepo, groupRepoErr := uow.GetRepositoryAs[GroupRepository](u, uow.RepositoryName(repoargs.GroupRepoName))
	if groupRepoErr != nil {
		return nil, groupRepoErr
	}
	expenseRepo, expenseRepoErr := uow.GetRepositoryAs[ExpenseRepository](u, uow.RepositoryName(repoargs.ExpenseRepoName))
	if expenseRepoErr != nil {
		return nil, expenseRepoErr
	}
	return &BalanceService{
		uow:         u,
		balanceRepo: balanceRepo,
		groupRepo:   groupRepo,
		expenseRepo: expenseRepo,
		log:         l,
	}, nil
}

type GroupBalances struct {
	GroupID  int64
	Members  []domain.Member
	Balances []domain.Balance
	Summary  domain.Summary
}

// GroupBalances - основная выдача балансов группы. Считает с нуля по журналу
// трат (кэшу не доверяем), освежает материализованное представление и строит
// сводку. Ошибка синка не мешает чтению - свежие цифры уже посчитаны.
func (s *BalanceService) GroupBalances(ctx context.Context, groupID int64) (*GroupBalances, error) {
	members, membersErr := s.groupRepo.GetMembers(ctx, groupID)
	if membersErr != nil {
		return nil, fmt.Errorf("getting group balances: %w", membersErr)
	}
	expenses, expensesErr := s.expenseRepo.GetByGroupID(ctx, groupID)
	if expensesErr != nil {
		return nil, fmt.Errorf("getting group balances: %w", expensesErr)
	}
	shares, sharesErr := s.expenseRepo.GetSharesByGroupID(ctx, groupID)
	if sharesErr != nil {
		return nil, fmt.Errorf("getting group balances: %w", sharesErr)
	}

	balances := ledger.Aggregate(members, expenses, shares)

	rows := make([]repoargs.BalanceUpsert, len(balances))
	for i, balance := range balances {
		rows[i] = repoargs.BalanceUpsert{UserID: balance.UserID, NetBalance: balance.NetBalance}
	}
	syncErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balanceRepo, repoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return balanceRepo.ReplaceForGroup(c, groupID, rows) //nolint:wrapcheck
	})
	if syncErr != nil {
		s.log.WithError(syncErr).WithField("groupID", groupID).Error("balance sync failed, view is stale until next recompute")
	}

	return &GroupBalances{
		GroupID:  groupID,
		Members:  members,
		Balances: balances,
		Summary:  ledger.Summarize(balances),
	}, nil
}

// UserBalance - позиция одного участника, посчитанная тем же полным пересчетом.
// Если userID не состоит в группе, вернется domain.ErrRecordNotFound.
func (s *BalanceService) UserBalance(ctx context.Context, groupID, userID int64) (*domain.Balance, error) {
	groupBalances, err := s.GroupBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, balance := range groupBalances.Balances {
		if balance.UserID == userID {
			return &balance, nil
		}
	}
	return nil, fmt.Errorf("getting user balance: %w", domain.ErrRecordNotFound)
}

type OverallSummary struct {
	OwedToUser decimal.Decimal
	UserOwes   decimal.Decimal
	NetBalance decimal.Decimal
}

// OverallSummary - сводка юзера по всем его группам из материализованных
// балансов. Здесь кэш используется как есть, без пересчета: точность уровня
// «последний успешный синк» для дашборда достаточна.
func (s *BalanceService) OverallSummary(ctx context.Context, userID int64) (*OverallSummary, error) {
	totals, err := s.balanceRepo.SumByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting overall summary: %w", err)
	}
	return &OverallSummary{
		OwedToUser: totals.OwedToUser,
		UserOwes:   totals.UserOwes,
		NetBalance: totals.OwedToUser.Sub(totals.UserOwes),
	}, nil
}
