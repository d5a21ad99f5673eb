package service

import (
	"fmt"

	"github.com/fsdevblog/groupsplit/internal/service/psswd"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService    *UserService
	GroupService   *GroupService
	ExpenseService *ExpenseService
	PaymentService *PaymentService
	BalanceService *BalanceService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, l *logrus.Logger) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	groupService, groupServiceErr := NewGroupService(unitOfWork)
	if groupServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", groupServiceErr.Error())
	}

	expenseService, expenseServiceErr := NewExpenseService(unitOfWork, l)
	if expenseServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", expenseServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	balanceService, balanceServiceErr := NewBalanceService(unitOfWork, l)
	if balanceServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", balanceServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		GroupService:   groupService,
		ExpenseService: expenseService,
		PaymentService: paymentService,
		BalanceService: balanceService,
	}, nil
}
