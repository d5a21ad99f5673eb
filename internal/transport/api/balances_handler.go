package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/gin-gonic/gin"
)

type BalancesHandler struct {
	balanceService BalanceServicer
	groupService   GroupServicer
}

func NewBalancesHandler(balanceService BalanceServicer, groupService GroupServicer) *BalancesHandler {
	return &BalancesHandler{
		balanceService: balanceService,
		groupService:   groupService,
	}
}

type BalanceResponse struct {
	UserID     int64   `json:"userId"`
	Username   string  `json:"username"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalOwed  float64 `json:"totalOwed"`
	NetBalance float64 `json:"netBalance"`
}

type SummaryResponse struct {
	TotalExpenses float64           `json:"totalExpenses"`
	TotalPaid     float64           `json:"totalPaid"`
	IsBalanced    bool              `json:"isBalanced"`
	Creditors     []BalanceResponse `json:"creditors"`
	Debtors       []BalanceResponse `json:"debtors"`
}

// GroupBalances GET RouteGroup + GroupBalancesRoute. Полная картина группы:
// участники, позиции и сводка кредиторов/должников.
func (h *BalancesHandler) GroupBalances(c *gin.Context) {
	groupID, ok := paramInt64(c, "groupId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	groupBalances, err := h.balanceService.GroupBalances(ctx, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"groupId":  groupBalances.GroupID,
		"members":  convertMembers(groupBalances.Members),
		"balances": convertBalances(groupBalances.Balances),
		"summary": SummaryResponse{
			TotalExpenses: groupBalances.Summary.TotalExpenses.InexactFloat64(),
			TotalPaid:     groupBalances.Summary.TotalPaid.InexactFloat64(),
			IsBalanced:    groupBalances.Summary.IsBalanced,
			Creditors:     convertBalances(groupBalances.Summary.Creditors),
			Debtors:       convertBalances(groupBalances.Summary.Debtors),
		},
	})
}

// UserBalance GET RouteGroup + UserBalanceRoute. Позиция одного участника.
func (h *BalancesHandler) UserBalance(c *gin.Context) {
	groupID, groupOK := paramInt64(c, "groupId")
	userID, userOK := paramInt64(c, "userId")
	if !groupOK || !userOK {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	balance, err := h.balanceService.UserBalance(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "balance not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": convertBalance(*balance)})
}

// OverallSummary GET RouteGroup + BalanceSummaryRoute. Сводка текущего юзера по
// всем его группам.
func (h *BalancesHandler) OverallSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.balanceService.OverallSummary(ctx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalOwedToYou": summary.OwedToUser.InexactFloat64(),
		"totalOwed":      summary.UserOwes.InexactFloat64(),
		"netBalance":     summary.NetBalance.InexactFloat64(),
	})
}

func (h *BalancesHandler) requireMembership(c *gin.Context, ctx context.Context, groupID int64) bool {
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

func convertBalance(balance domain.Balance) BalanceResponse {
	return BalanceResponse{
		UserID:     balance.UserID,
		Username:   balance.Username,
		TotalPaid:  balance.TotalPaid.InexactFloat64(),
		TotalOwed:  balance.TotalOwed.InexactFloat64(),
		NetBalance: balance.NetBalance.InexactFloat64(),
	}
}

func convertBalances(balances []domain.Balance) []BalanceResponse {
	res := make([]BalanceResponse, len(balances))
	for i, balance := range balances {
		res[i] = convertBalance(balance)
	}
	return res
}
