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

type PaymentsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *mocks.MockPaymentServicer
	mockGroupService   *mocks.MockGroupServicer
	jwtSecret          []byte
}

func TestPaymentsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentsHandlerTestSuite))
}

func (s *PaymentsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.mockGroupService = mocks.NewMockGroupServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		PaymentService: s.mockPaymentService,
		GroupService:   s.mockGroupService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *PaymentsHandlerTestSuite) TestCreate() {
	var payerID int64 = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(payerID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	validPayload := []byte(`{"groupId":1,"payeeId":2,"amount":50}`)
	selfPayload := []byte(`{"groupId":1,"payeeId":1,"amount":50}`)
	outsiderPayload := []byte(`{"groupId":1,"payeeId":99,"amount":50}`)
	brokenPayload := []byte(`{"groupId":`)

	// Моки
	// Валидный платеж.
	s.mockPaymentService.EXPECT().
		Create(gomock.Any(), gomock.Eq(service.CreatePaymentArgs{
			GroupID: 1,
			PayerID: payerID,
			PayeeID: 2,
			Amount:  decimal.NewFromInt(50),
		})).
		Return(&domain.Payment{ID: 10, GroupID: 1, PayerID: payerID, PayeeID: 2, Amount: decimal.NewFromInt(50)}, nil)
	// Платеж самому себе.
	s.mockPaymentService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrSelfPayment)
	// Получатель не в группе.
	s.mockPaymentService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNotGroupMember)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, jwtToken: jwtToken, wantStatus: http.StatusCreated},
		{name: "self payment", payload: selfPayload, jwtToken: jwtToken, wantStatus: http.StatusBadRequest},
		{name: "payee is not a member", payload: outsiderPayload, jwtToken: jwtToken, wantStatus: http.StatusForbidden},
		{name: "not authorized", payload: validPayload, wantStatus: http.StatusUnauthorized},
		{name: "broken json", payload: brokenPayload, jwtToken: jwtToken, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PaymentsRoute,
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

			if t.wantStatus == http.StatusCreated {
				var body struct {
					Message   string `json:"message"`
					PaymentID int64  `json:"paymentId"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(int64(10), body.PaymentID)
			}
		})
	}
}

func (s *PaymentsHandlerTestSuite) TestIndex() {
	var memberID int64 = 1
	var outsiderID int64 = 9

	memberToken, mErr := tokens.GenerateUserJWT(memberID, time.Hour, s.jwtSecret)
	s.Require().NoError(mErr)
	outsiderToken, oErr := tokens.GenerateUserJWT(outsiderID, time.Hour, s.jwtSecret)
	s.Require().NoError(oErr)

	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), memberID).Return(true, nil)
	s.mockGroupService.EXPECT().IsMember(gomock.Any(), int64(1), outsiderID).Return(false, nil)

	payments := []domain.Payment{
		{ID: 2, GroupID: 1, PayerID: 1, PayeeID: 2, Amount: decimal.NewFromInt(10), Currency: "USD"},
	}
	s.mockPaymentService.EXPECT().GetByGroupID(gomock.Any(), int64(1)).Return(payments, nil)

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", url: RouteGroup + PaymentsRoute + "?group_id=1", jwtToken: memberToken, wantStatus: http.StatusOK},
		{name: "not a member", url: RouteGroup + PaymentsRoute + "?group_id=1", jwtToken: outsiderToken, wantStatus: http.StatusForbidden},
		{name: "missing group_id", url: RouteGroup + PaymentsRoute, jwtToken: memberToken, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
