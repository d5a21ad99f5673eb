package api

import (
	"bytes"
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
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validPayload := []byte(`{"login":"alice","password":"secret password"}`)
	duplicatePayload := []byte(`{"login":"taken","password":"secret password"}`)
	shortPassPayload := []byte(`{"login":"alice","password":"123"}`)

	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Eq(service.RegisterUserArgs{
			Username: "alice",
			Password: "secret password",
		})).
		Return(&domain.User{ID: 1, Username: "alice"}, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrDuplicateKey)

	authorizedToken, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, wantStatus: http.StatusOK},
		{name: "duplicate login", payload: duplicatePayload, wantStatus: http.StatusConflict},
		{name: "short password", payload: shortPassPayload, wantStatus: http.StatusUnprocessableEntity},
		{name: "already authorized", payload: validPayload, jwtToken: authorizedToken, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader(t.payload),
			}
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
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
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	validPayload := []byte(`{"login":"alice","password":"secret password"}`)
	wrongPassPayload := []byte(`{"login":"alice","password":"wrong password"}`)
	unknownPayload := []byte(`{"login":"nobody","password":"secret password"}`)

	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Eq(service.LoginUserArgs{
			Username: "alice",
			Password: "secret password",
		})).
		Return(&domain.User{ID: 1, Username: "alice"}, "jwt-token", nil)
	// Неверный пароль и неизвестный логин транспорт обязан показывать одинаково.
	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, wantStatus: http.StatusOK},
		{name: "wrong password", payload: wrongPassPayload, wantStatus: http.StatusUnauthorized},
		{name: "unknown login", payload: unknownPayload, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader(t.payload),
			}

			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}
