package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpensesHandler struct {
	expenseService ExpenseServicer
	groupService   GroupServicer
}

func NewExpensesHandler(expenseService ExpenseServicer, groupService GroupServicer) *ExpensesHandler {
	return &ExpensesHandler{
		expenseService: expenseService,
		groupService:   groupService,
	}
}

type ExpenseSplitParams struct {
	UserID int64           `binding:"required" json:"userId"`
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

type ExpenseCreateParams struct {
	GroupID     int64           `binding:"required"             json:"groupId"`
	Title       string          `binding:"required,min=1,max=200" json:"title"`
	Description string          `binding:"max=500"              json:"description"`
	Amount      decimal.Decimal `binding:"required"             json:"amount"`
	// SplitAmong - участники разбивки. Пустой список означает всю группу.
	SplitAmong []int64 `json:"splitAmong"`
	// Splits задает кастомные доли; nil - равная разбивка.
	Splits []ExpenseSplitParams `json:"splits"`
}

type ExpenseResponse struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"groupId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PaidBy      int64     `json:"paidBy"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ExpenseShareResponse struct {
	UserID      int64   `json:"userId"`
	ShareAmount float64 `json:"shareAmount"`
}

// Create POST RouteGroup + ExpensesRoute. Плательщиком всегда выступает текущий
// юзер. Пустой splitAmong раскрывается в полный состав группы.
func (h *ExpensesHandler) Create(c *gin.Context) {
	var params ExpenseCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, params.GroupID) {
		return
	}

	memberIDs, memberIDsErr := h.resolveMemberIDs(ctx, params.GroupID, params.SplitAmong)
	if memberIDsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, memberIDsErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	expense, createErr := h.expenseService.Create(ctx, service.CreateExpenseArgs{
		GroupID:     params.GroupID,
		Title:       params.Title,
		Description: params.Description,
		PaidBy:      getUserIDFromContext(c),
		Amount:      params.Amount,
		MemberIDs:   memberIDs,
		Splits:      convertSplitParams(params.Splits),
	})
	if createErr != nil {
		h.abortWithExpenseError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": convertExpense(*expense)})
}

// Index GET RouteGroup + ExpensesRoute?group_id=N. Траты группы, новые сверху.
func (h *ExpensesHandler) Index(c *gin.Context) {
	groupID, ok := queryInt64(c, "group_id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "group_id query param is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	expenses, err := h.expenseService.GetByGroupID(ctx, groupID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	res := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		res[i] = convertExpense(expense)
	}
	c.JSON(http.StatusOK, gin.H{"expenses": res})
}

type RecentExpenseResponse struct {
	ExpenseResponse
	PaidByUsername string `json:"paidByUsername"`
	GroupName      string `json:"groupName"`
}

// Recent GET RouteGroup + ExpensesRecentRoute. Последние траты по всем группам
// текущего юзера.
func (h *ExpensesHandler) Recent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	recent, err := h.expenseService.Recent(ctx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	res := make([]RecentExpenseResponse, len(recent))
	for i, item := range recent {
		res[i] = RecentExpenseResponse{
			ExpenseResponse: convertExpense(item.Expense),
			PaidByUsername:  item.PaidByUsername,
			GroupName:       item.GroupName,
		}
	}
	c.JSON(http.StatusOK, gin.H{"expenses": res})
}

// Show GET RouteGroup + ExpenseRoute. Трата вместе с долями.
func (h *ExpensesHandler) Show(c *gin.Context) {
	expenseID, ok := paramInt64(c, "expenseId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.expenseService.Details(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "expense not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if !h.requireMembership(c, ctx, details.Expense.GroupID) {
		return
	}

	shares := make([]ExpenseShareResponse, len(details.Shares))
	for i, share := range details.Shares {
		shares[i] = ExpenseShareResponse{
			UserID:      share.UserID,
			ShareAmount: share.ShareAmount.InexactFloat64(),
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"expense": convertExpense(details.Expense),
		"shares":  shares,
	})
}

type ExpenseUpdateParams struct {
	Title       string               `binding:"required,min=1,max=200" json:"title"`
	Description string               `binding:"max=500"              json:"description"`
	Amount      decimal.Decimal      `binding:"required"             json:"amount"`
	SplitAmong  []int64              `json:"splitAmong"`
	Splits      []ExpenseSplitParams `json:"splits"`
}

// Update PUT RouteGroup + ExpenseRoute. Полная перезапись траты и ее разбивки.
func (h *ExpensesHandler) Update(c *gin.Context) {
	expenseID, ok := paramInt64(c, "expenseId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	var params ExpenseUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	current, findErr := h.expenseService.Details(ctx, expenseID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "expense not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, findErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if !h.requireMembership(c, ctx, current.Expense.GroupID) {
		return
	}

	memberIDs, memberIDsErr := h.resolveMemberIDs(ctx, current.Expense.GroupID, params.SplitAmong)
	if memberIDsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, memberIDsErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	expense, updErr := h.expenseService.Update(ctx, service.UpdateExpenseArgs{
		ID:          expenseID,
		Title:       params.Title,
		Description: params.Description,
		PaidBy:      current.Expense.PaidBy,
		Amount:      params.Amount,
		MemberIDs:   memberIDs,
		Splits:      convertSplitParams(params.Splits),
	})
	if updErr != nil {
		h.abortWithExpenseError(c, updErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": convertExpense(*expense)})
}

// Delete DELETE RouteGroup + ExpenseRoute.
func (h *ExpensesHandler) Delete(c *gin.Context) {
	expenseID, ok := paramInt64(c, "expenseId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	current, findErr := h.expenseService.Details(ctx, expenseID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "expense not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, findErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if !h.requireMembership(c, ctx, current.Expense.GroupID) {
		return
	}

	if delErr := h.expenseService.Delete(ctx, expenseID); delErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, delErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

// abortWithExpenseError мапит ошибки валидации разбивки на 400; остальное - 500.
func (h *ExpensesHandler) abortWithExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyMemberSet),
		errors.Is(err, domain.ErrInvalidMember),
		errors.Is(err, domain.ErrSplitMismatch):
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "expense not found"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
	}
}

// resolveMemberIDs раскрывает пустой splitAmong в полный состав группы.
func (h *ExpensesHandler) resolveMemberIDs(ctx context.Context, groupID int64, splitAmong []int64) ([]int64, error) {
	if len(splitAmong) > 0 {
		return splitAmong, nil
	}
	details, err := h.groupService.Details(ctx, groupID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ids := make([]int64, len(details.Members))
	for i, member := range details.Members {
		ids[i] = member.UserID
	}
	return ids, nil
}

func (h *ExpensesHandler) requireMembership(c *gin.Context, ctx context.Context, groupID int64) bool {
	isMember, err := h.groupService.IsMember(ctx, groupID, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return false
	}
	if !isMember {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this group"})
		return false
	}
	return true
}

func convertExpense(expense domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		Title:       expense.Title,
		Description: expense.Description,
		PaidBy:      expense.PaidBy,
		Amount:      expense.Amount.InexactFloat64(),
		CreatedAt:   expense.CreatedAt,
	}
}

func convertSplitParams(splits []ExpenseSplitParams) []service.ExpenseSplitInput {
	if splits == nil {
		return nil
	}
	res := make([]service.ExpenseSplitInput, len(splits))
	for i, split := range splits {
		res[i] = service.ExpenseSplitInput{UserID: split.UserID, Amount: split.Amount}
	}
	return res
}
