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

type ExpenseService struct {
	uow         uow.UOW
	expenseRepo ExpenseRepository
	groupRepo   GroupRepository
	log         *logrus.Logger
}

func NewExpenseService(u uow.UOW, l *logrus.Logger) (*ExpenseService, error) {
	expenseRepo, expenseRepoErr := uow.GetRepositoryAs[ExpenseRepository](u, uow.RepositoryName(repoargs.ExpenseRepoName))
	if expenseRepoErr != nil {
		return nil, expenseRepoErr
	}
	groupRepo, groupRepoErr := uow.GetRepositoryAs[GroupRepository](u, uow.RepositoryName(repoargs.GroupRepoName))
	if groupRepoErr != nil {
		return nil, groupRepoErr
	}
	return &ExpenseService{
		uow:         u,
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		log:         l,
	}, nil
}

type ExpenseSplitInput struct {
	UserID int64
	Amount decimal.Decimal
}

type CreateExpenseArgs struct {
	GroupID     int64
	Title       string
	Description string
	PaidBy      int64
	Amount      decimal.Decimal
	MemberIDs   []int64
	// Splits == nil означает равную разбивку между MemberIDs.
	Splits []ExpenseSplitInput
}

// Create валидирует разбивку и атомарно записывает трату вместе с долями.
// После коммита полностью пересчитывает балансы группы; неудачный пересчет не
// откатывает уже записанную трату (см. syncGroupBalances).
//
// Алгоритм работы:
//  1. Загружается текущий состав группы.
//  2. ledger.ValidateSplit отклоняет некорректный ввод до любой записи.
//  3. В одной транзакции создаются expense и все его expense_shares.
//  4. Балансы группы пересчитываются с нуля и синхронизируются best-effort.
func (s *ExpenseService) Create(ctx context.Context, args CreateExpenseArgs) (*domain.Expense, error) {
	groupMemberIDs, membersErr := s.groupMemberIDs(ctx, args.GroupID)
	if membersErr != nil {
		return nil, fmt.Errorf("creating expense: %w", membersErr)
	}

	splits := toLedgerSplits(args.Splits)
	if valErr := ledger.ValidateSplit(args.Amount, args.MemberIDs, splits, groupMemberIDs); valErr != nil {
		return nil, valErr
	}
	shares := ledger.Shares(args.Amount, args.MemberIDs, splits)

	var expense *domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		expense, createErr = repo.CreateExpense(c, repoargs.CreateExpense{
			GroupID:     args.GroupID,
			Title:       args.Title,
			Description: args.Description,
			PaidBy:      args.PaidBy,
			Amount:      args.Amount,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return s.insertShares(c, repo, expense.ID, shares)
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating expense: %w", txErr)
	}

	s.syncGroupBalances(ctx, args.GroupID)
	return expense, nil
}

type UpdateExpenseArgs struct {
	ID          int64
	Title       string
	Description string
	PaidBy      int64
	Amount      decimal.Decimal
	MemberIDs   []int64
	Splits      []ExpenseSplitInput
}

// Update перезаписывает трату и ее доли как единое целое: старые доли
// удаляются и вставляются заново под новую разбивку в той же транзакции.
func (s *ExpenseService) Update(ctx context.Context, args UpdateExpenseArgs) (*domain.Expense, error) {
	current, findErr := s.expenseRepo.FindByID(ctx, args.ID)
	if findErr != nil {
		return nil, fmt.Errorf("updating expense: %w", findErr)
	}

	groupMemberIDs, membersErr := s.groupMemberIDs(ctx, current.GroupID)
	if membersErr != nil {
		return nil, fmt.Errorf("updating expense: %w", membersErr)
	}

	splits := toLedgerSplits(args.Splits)
	if valErr := ledger.ValidateSplit(args.Amount, args.MemberIDs, splits, groupMemberIDs); valErr != nil {
		return nil, valErr
	}
	shares := ledger.Shares(args.Amount, args.MemberIDs, splits)

	var expense *domain.Expense
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[ExpenseRepository](tx, uow.RepositoryName(repoargs.ExpenseRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		expense, updErr = repo.UpdateExpense(c, repoargs.UpdateExpense{
			ID:          args.ID,
			Title:       args.Title,
			Description: args.Description,
			PaidBy:      args.PaidBy,
			Amount:      args.Amount,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if delErr := repo.DeleteShares(c, expense.ID); delErr != nil {
			return delErr //nolint:wrapcheck
		}
		return s.insertShares(c, repo, expense.ID, shares)
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating expense: %w", txErr)
	}

	s.syncGroupBalances(ctx, expense.GroupID)
	return expense, nil
}

// Delete удаляет трату (доли уходят каскадом) и пересчитывает балансы группы.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	expense, findErr := s.expenseRepo.FindByID(ctx, id)
	if findErr != nil {
		return fmt.Errorf("deleting expense: %w", findErr)
	}

	if delErr := s.expenseRepo.DeleteExpense(ctx, id); delErr != nil {
		return fmt.Errorf("deleting expense: %w", delErr)
	}

	s.syncGroupBalances(ctx, expense.GroupID)
	return nil
}

func (s *ExpenseService) GetByGroupID(ctx context.Context, groupID int64) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return expenses, nil
}

// recentExpensesLimit ограничивает ленту последних трат.
const recentExpensesLimit = 10

type RecentExpense struct {
	Expense        domain.Expense
	PaidByUsername string
	GroupName      string
}

// Recent - лента активности: последние траты по всем группам юзера.
func (s *ExpenseService) Recent(ctx context.Context, userID int64) ([]RecentExpense, error) {
	rows, err := s.expenseRepo.GetRecentByUserID(ctx, userID, recentExpensesLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	recent := make([]RecentExpense, len(rows))
	for i, row := range rows {
		recent[i] = RecentExpense{
			Expense:        row.Expense,
			PaidByUsername: row.PaidByUsername,
			GroupName:      row.GroupName,
		}
	}
	return recent, nil
}

type ExpenseDetails struct {
	Expense domain.Expense
	Shares  []domain.ExpenseShare
}

func (s *ExpenseService) Details(ctx context.Context, id int64) (*ExpenseDetails, error) {
	expense, findErr := s.expenseRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	shares, sharesErr := s.expenseRepo.GetSharesByExpenseID(ctx, id)
	if sharesErr != nil {
		return nil, sharesErr //nolint:wrapcheck
	}
	return &ExpenseDetails{Expense: *expense, Shares: shares}, nil
}

func (s *ExpenseService) insertShares(ctx context.Context, repo ExpenseRepository, expenseID int64, shares []ledger.Share) error {
	rows := make([]repoargs.CreateShare, len(shares))
	for i, share := range shares {
		rows[i] = repoargs.CreateShare{
			ExpenseID:   expenseID,
			UserID:      share.UserID,
			ShareAmount: share.Amount,
		}
	}

	var insertErr error
	repo.CreateShares(ctx, rows, func(_ int, err error) {
		if err != nil {
			insertErr = err
		}
	})
	return insertErr
}

// syncGroupBalances пересчитывает балансы группы с нуля и перезаписывает
// материализованное представление одной транзакцией. Трата на этот момент уже
// закоммичена, поэтому ошибка синка только логируется: следующее чтение
// балансов пересчитает их заново по журналу.
func (s *ExpenseService) syncGroupBalances(ctx context.Context, groupID int64) {
	if err := recomputeAndSync(ctx, s.uow, s.groupRepo, s.expenseRepo, groupID); err != nil {
		s.log.WithError(err).WithField("groupID", groupID).Error("balance sync failed, view is stale until next recompute")
	}
}

func toLedgerSplits(splits []ExpenseSplitInput) []ledger.SplitInput {
	if splits == nil {
		return nil
	}
	res := make([]ledger.SplitInput, len(splits))
	for i, split := range splits {
		res[i] = ledger.SplitInput{UserID: split.UserID, Amount: split.Amount}
	}
	return res
}

// recomputeAndSync - общий для сервисов полный пересчет: журнал группы →
// ledger.Aggregate → атомарная перезапись balances.
func recomputeAndSync(ctx context.Context, u uow.UOW, groupRepo GroupRepository, expenseRepo ExpenseRepository, groupID int64) error {
	members, membersErr := groupRepo.GetMembers(ctx, groupID)
	if membersErr != nil {
		return membersErr //nolint:wrapcheck
	}
	expenses, expensesErr := expenseRepo.GetByGroupID(ctx, groupID)
	if expensesErr != nil {
		return expensesErr //nolint:wrapcheck
	}
	shares, sharesErr := expenseRepo.GetSharesByGroupID(ctx, groupID)
	if sharesErr != nil {
		return sharesErr //nolint:wrapcheck
	}

	balances := ledger.Aggregate(members, expenses, shares)

	rows := make([]repoargs.BalanceUpsert, len(balances))
	for i, balance := range balances {
		rows[i] = repoargs.BalanceUpsert{UserID: balance.UserID, NetBalance: balance.NetBalance}
	}

	return u.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		balanceRepo, repoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return balanceRepo.ReplaceForGroup(c, groupID, rows) //nolint:wrapcheck
	})
}

func (s *ExpenseService) groupMemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	members, err := s.groupRepo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ids := make([]int64, len(members))
	for i, member := range members {
		ids[i] = member.UserID
	}
	return ids, nil
}
