package api

import (
	"time"

	"github.com/fsdevblog/groupsplit/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api"
	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"

	GroupsRoute          = "/groups"
	GroupRoute           = "/groups/:groupId"
	GroupMembersRoute    = "/groups/:groupId/members"
	GroupMemberRoute     = "/groups/:groupId/members/:memberId"
	GroupMemberRoleRoute = "/groups/:groupId/members/:memberId/role"

	ExpensesRoute       = "/expenses"
	ExpensesRecentRoute = "/expenses/recent"
	ExpenseRoute        = "/expenses/:expenseId"

	PaymentsRoute = "/payments"

	GroupBalancesRoute  = "/balances/group/:groupId"
	UserBalanceRoute    = "/balances/group/:groupId/user/:userId"
	BalanceSummaryRoute = "/balances/summary"

	CurrencyRatesRoute     = "/currency/rates"
	CurrencySupportedRoute = "/currency/supported"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	GroupService    GroupServicer
	ExpenseService  ExpenseServicer
	PaymentService  PaymentServicer
	BalanceService  BalanceServicer
	CurrencyService CurrencyServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	groupsHandler := NewGroupsHandler(args.GroupService)
	expensesHandler := NewExpensesHandler(args.ExpenseService, args.GroupService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService, args.GroupService)
	balancesHandler := NewBalancesHandler(args.BalanceService, args.GroupService)
	currencyHandler := NewCurrencyHandler(args.CurrencyService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// курсы валют доступны без авторизации
	api.GET(CurrencyRatesRoute, currencyHandler.Rates)
	api.GET(CurrencySupportedRoute, currencyHandler.Supported)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(GroupsRoute, groupsHandler.Create)
	api.GET(GroupsRoute, groupsHandler.Index)
	api.GET(GroupRoute, groupsHandler.Show)
	api.POST(GroupMembersRoute, groupsHandler.AddMember)
	api.DELETE(GroupMemberRoute, groupsHandler.RemoveMember)
	api.PATCH(GroupMemberRoleRoute, groupsHandler.UpdateMemberRole)

	api.POST(ExpensesRoute, expensesHandler.Create)
	api.GET(ExpensesRoute, expensesHandler.Index)
	api.GET(ExpensesRecentRoute, expensesHandler.Recent)
	api.GET(ExpenseRoute, expensesHandler.Show)
	api.PUT(ExpenseRoute, expensesHandler.Update)
	api.DELETE(ExpenseRoute, expensesHandler.Delete)

	api.POST(PaymentsRoute, paymentsHandler.Create)
	api.GET(PaymentsRoute, paymentsHandler.Index)

	api.GET(GroupBalancesRoute, balancesHandler.GroupBalances)
	api.GET(UserBalanceRoute, balancesHandler.UserBalance)
	api.GET(BalanceSummaryRoute, balancesHandler.OverallSummary)

	return r
}
