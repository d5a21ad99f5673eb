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

type PaymentsHandler struct {
	paymentService PaymentServicer
	groupService   GroupServicer
}

func NewPaymentsHandler(paymentService PaymentServicer, groupService GroupServicer) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
		groupService:   groupService,
	}
}

type PaymentCreateParams struct {
	GroupID  int64           `binding:"required"     json:"groupId"`
	PayeeID  int64           `binding:"required"     json:"payeeId"`
	Amount   decimal.Decimal `binding:"required"     json:"amount"`
	Currency string          `binding:"omitempty,len=3" json:"currency"`
	Notes    string          `binding:"max=500"      json:"notes"`
}

type PaymentResponse struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"groupId"`
	PayerID     int64     `json:"payerId"`
	PayeeID     int64     `json:"payeeId"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Notes       string    `json:"notes"`
	PaymentDate time.Time `json:"paymentDate"`
}

// Create POST RouteGroup + PaymentsRoute. Плательщиком всегда выступает текущий
// юзер; платеж немедленно сдвигает балансы обеих сторон.
func (h *PaymentsHandler) Create(c *gin.Context) {
	var params PaymentCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, createErr := h.paymentService.Create(ctx, service.CreatePaymentArgs{
		GroupID:  params.GroupID,
		PayerID:  getUserIDFromContext(c),
		PayeeID:  params.PayeeID,
		Amount:   params.Amount,
		Currency: params.Currency,
		Notes:    params.Notes,
	})
	if createErr != nil {
		switch {
		case errors.Is(createErr, domain.ErrInvalidAmount),
			errors.Is(createErr, domain.ErrSelfPayment):
			_ = c.Error(createErr)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": createErr.Error()})
		case errors.Is(createErr, domain.ErrNotGroupMember):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "payer and payee must be group members"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "payment recorded",
		"paymentId": payment.ID,
	})
}

// Index GET RouteGroup + PaymentsRoute?group_id=N. Платежи группы, новые сверху.
func (h *PaymentsHandler) Index(c *gin.Context) {
	groupID, ok := queryInt64(c, "group_id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "group_id query param is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	isMember, memberErr := h.groupService.IsMember(ctx, groupID, getUserIDFromContext(c))
	if memberErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, memberErr).
			SetType(gin.ErrorTypePrivate)
		return
	}
	if !isMember {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this group"})
		return
	}

	payments, err := h.paymentService.GetByGroupID(ctx, groupID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	res := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		res[i] = PaymentResponse{
			ID:          payment.ID,
			GroupID:     payment.GroupID,
			PayerID:     payment.PayerID,
			PayeeID:     payment.PayeeID,
			Amount:      payment.Amount.InexactFloat64(),
			Currency:    payment.Currency,
			Notes:       payment.Notes,
			PaymentDate: payment.PaymentDate,
		}
	}
	c.JSON(http.StatusOK, gin.H{"payments": res})
}
