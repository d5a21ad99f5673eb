package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/logger"
	"github.com/fsdevblog/groupsplit/internal/service"
	"github.com/fsdevblog/groupsplit/internal/service/tokens"
	"github.com/fsdevblog/groupsplit/internal/transport/api/mocks"
	"github.com/fsdevblog/groupsplit/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpensesHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockExpenseService *mocks.MockExpenseServicer
	mockGroupService   *mocks.MockGroupServicer
	jwtSecret          []byte
}

func TestExpensesHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpensesHandlerTestSuite))
}

func (s *ExpensesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockExpenseService = mocks.NewMockExpenseServicer(mockCtrl)
	s.mockGroupService = mocks.NewMockGroupServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		ExpenseService: s.mockExpenseService,
		GroupService:   s.mockGroupService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *ExpensesHandlerTestSuite) TestCreate() {
	var payerID int64 = 1
	var outsiderID int64 = 9

	payerToken, pErr := tokens.GenerateUserJWT(payerID, time.Hour, s.jwtSecret)
	s.Require().NoError(pErr)
	outsiderToken, oErr := tokens.GenerateUserJWT(outsiderID, time.Hour, s.jwtSecret)
	s.Require().NoError(oErr)

	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), payerID).Return(true, nil).AnyTimes()
	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), outsiderID).Return(false, nil)

	validPayload := []byte(`{"groupId":1,"title":"ужин","amount":90,"splitAmong":[1,2,3]}`)
	mismatchPayload := []byte(`{"groupId":1,"title":"ужин","amount":100,"splitAmong":[1,2],` +
		`"splits":[{"userId":1,"amount":60},{"userId":2,"amount":39.5}]}`)
	noTitlePayload := []byte(`{"groupId":1,"amount":90,"splitAmong":[1,2,3]}`)

	createdExpense := domain.Expense{ID: 5, GroupID: 1, Title: "ужин", PaidBy: payerID, Amount: decimal.NewFromInt(90)}

	s.mockExpenseService.EXPECT().
		Create(gomock.Any(), gomock.Eq(service.CreateExpenseArgs{
			GroupID:   1,
			Title:     "ужин",
			PaidBy:    payerID,
			Amount:    decimal.NewFromInt(90),
			MemberIDs: []int64{1, 2, 3},
		})).
		Return(&createdExpense, nil)
	// Разбивка не сходится с суммой - сервис отвечает доменной ошибкой.
	s.mockExpenseService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrSplitMismatch)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, jwtToken: payerToken, wantStatus: http.StatusCreated},
		{name: "split mismatch", payload: mismatchPayload, jwtToken: payerToken, wantStatus: http.StatusBadRequest},
		{name: "not a member", payload: validPayload, jwtToken: outsiderToken, wantStatus: http.StatusForbidden},
		{name: "missing title", payload: noTitlePayload, jwtToken: payerToken, wantStatus: http.StatusBadRequest},
		{name: "not authorized", payload: validPayload, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + ExpensesRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))

			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *ExpensesHandlerTestSuite) TestRecent() {
	var memberID int64 = 1

	memberToken, mErr := tokens.GenerateUserJWT(memberID, time.Hour, s.jwtSecret)
	s.Require().NoError(mErr)

	recent := []service.RecentExpense{
		{
			Expense:        domain.Expense{ID: 9, GroupID: 2, Title: "бензин", PaidBy: 2, Amount: decimal.NewFromInt(40)},
			PaidByUsername: "bob",
			GroupName:      "поездка",
		},
		{
			Expense:        domain.Expense{ID: 5, GroupID: 1, Title: "ужин", PaidBy: 1, Amount: decimal.NewFromInt(90)},
			PaidByUsername: "alice",
			GroupName:      "квартира",
		},
	}

	s.mockExpenseService.EXPECT().Recent(gomock.Any(), memberID).Return(recent, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", jwtToken: memberToken, wantStatus: http.StatusOK},
		{name: "not authorized", wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + ExpensesRecentRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}

			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body struct {
					Expenses []RecentExpenseResponse `json:"expenses"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Require().Len(body.Expenses, 2)
				s.Equal(int64(9), body.Expenses[0].ID)
				s.Equal("bob", body.Expenses[0].PaidByUsername)
				s.Equal("поездка", body.Expenses[0].GroupName)
			}
		})
	}
}

func (s *ExpensesHandlerTestSuite) TestShow() {
	var memberID int64 = 1

	memberToken, mErr := tokens.GenerateUserJWT(memberID, time.Hour, s.jwtSecret)
	s.Require().NoError(mErr)

	expense := domain.Expense{ID: 5, GroupID: 1, Title: "ужин", PaidBy: 1, Amount: decimal.NewFromInt(90)}
	shares := []domain.ExpenseShare{
		{ExpenseID: 5, UserID: 1, ShareAmount: decimal.NewFromInt(30)},
		{ExpenseID: 5, UserID: 2, ShareAmount: decimal.NewFromInt(30)},
		{ExpenseID: 5, UserID: 3, ShareAmount: decimal.NewFromInt(30)},
	}

	s.mockExpenseService.EXPECT().Details(gomock.Any(), int64(5)).
		Return(&service.ExpenseDetails{Expense: expense, Shares: shares}, nil)
	s.mockExpenseService.EXPECT().Details(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), memberID).Return(true, nil)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "all ok", url: "/api/expenses/5", wantStatus: http.StatusOK},
		{name: "not found", url: "/api/expenses/404", wantStatus: http.StatusNotFound},
		{name: "bad id", url: "/api/expenses/abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", memberToken)))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *ExpensesHandlerTestSuite) TestDelete() {
	var memberID int64 = 1

	memberToken, mErr := tokens.GenerateUserJWT(memberID, time.Hour, s.jwtSecret)
	s.Require().NoError(mErr)

	expense := domain.Expense{ID: 5, GroupID: 1, Title: "ужин", PaidBy: 1, Amount: decimal.NewFromInt(90)}

	s.mockExpenseService.EXPECT().Details(gomock.Any(), int64(5)).
		Return(&service.ExpenseDetails{Expense: expense}, nil)
	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), memberID).Return(true, nil)
	s.mockExpenseService.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    "/api/expenses/5",
	}
	res, err := testutils.MakeRequest(args,
		testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", memberToken)))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}
