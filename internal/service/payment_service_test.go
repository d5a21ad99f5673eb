package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/internal/service/mocks"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	uowmocks "github.com/fsdevblog/groupsplit/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPaymentRepo *mocks.MockPaymentRepository
	mockGroupRepo   *mocks.MockGroupRepository
	mockBalanceRepo *mocks.MockBalanceRepository
	paymentService  *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(mockCtrl)
	s.mockGroupRepo = mocks.NewMockGroupRepository(mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.GroupRepoName)).
		Return(s.mockGroupRepo, nil).AnyTimes()

	paymentService, servErr := NewPaymentService(s.mockUOW)
	s.Require().NoError(servErr)
	s.paymentService = paymentService
}

// expectTransaction прокидывает колбэк uow.Do в мок транзакции с обоими
// репозиториями.
func (s *PaymentServiceTestSuite) expectTransaction() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

// Платеж 50 от должника кредитору: сальдо плательщика +50, получателя -50.
// Вставка платежа и обе правки - внутри одной транзакции uow.
func (s *PaymentServiceTestSuite) TestCreateAppliesSettlementDeltas() {
	amount := decimal.NewFromInt(50)
	args := CreatePaymentArgs{
		GroupID: 1,
		PayerID: 2,
		PayeeID: 3,
		Amount:  amount,
		Notes:   "долг за ужин",
	}

	s.mockGroupRepo.EXPECT().IsMember(gomock.Any(), args.GroupID, args.PayerID).Return(true, nil)
	s.mockGroupRepo.EXPECT().IsMember(gomock.Any(), args.GroupID, args.PayeeID).Return(true, nil)

	s.expectTransaction()

	createdPayment := domain.Payment{
		ID:          10,
		GroupID:     args.GroupID,
		PayerID:     args.PayerID,
		PayeeID:     args.PayeeID,
		Amount:      amount,
		Currency:    "USD",
		Notes:       args.Notes,
		PaymentDate: time.Now(),
	}

	s.mockPaymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Eq(repoargs.CreatePayment{
			GroupID:  args.GroupID,
			PayerID:  args.PayerID,
			PayeeID:  args.PayeeID,
			Amount:   amount,
			Currency: "USD", // валюта по умолчанию, в args не задана
			Notes:    args.Notes,
		})).
		Return(&createdPayment, nil)

	s.mockBalanceRepo.EXPECT().
		ApplyDelta(gomock.Any(), args.GroupID, args.PayerID, gomock.Eq(amount)).
		Return(nil)
	s.mockBalanceRepo.EXPECT().
		ApplyDelta(gomock.Any(), args.GroupID, args.PayeeID, gomock.Eq(amount.Neg())).
		Return(nil)

	payment, err := s.paymentService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(&createdPayment, payment)
}

func (s *PaymentServiceTestSuite) TestCreateRejectsBeforeWrite() {
	cases := []struct {
		name    string
		args    CreatePaymentArgs
		wantErr error
	}{
		{
			name:    "zero amount",
			args:    CreatePaymentArgs{GroupID: 1, PayerID: 2, PayeeID: 3, Amount: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			args:    CreatePaymentArgs{GroupID: 1, PayerID: 2, PayeeID: 3, Amount: decimal.NewFromInt(-5)},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "self payment",
			args:    CreatePaymentArgs{GroupID: 1, PayerID: 2, PayeeID: 2, Amount: decimal.NewFromInt(5)},
			wantErr: domain.ErrSelfPayment,
		},
	}

	// uow.Do не должен вызываться ни в одном кейсе.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			payment, err := s.paymentService.Create(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(payment)
		})
	}
}

func (s *PaymentServiceTestSuite) TestCreateRejectsNonMember() {
	args := CreatePaymentArgs{GroupID: 1, PayerID: 2, PayeeID: 99, Amount: decimal.NewFromInt(5)}

	s.mockGroupRepo.EXPECT().IsMember(gomock.Any(), args.GroupID, args.PayerID).Return(true, nil)
	s.mockGroupRepo.EXPECT().IsMember(gomock.Any(), args.GroupID, args.PayeeID).Return(false, nil)
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	payment, err := s.paymentService.Create(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrNotGroupMember)
	s.Nil(payment)
}

// Ошибка на второй правке баланса должна провалить весь Create: обе стороны
// двигаются только вместе.
func (s *PaymentServiceTestSuite) TestCreateFailsWhenDeltaFails() {
	amount := decimal.NewFromInt(20)
	args := CreatePaymentArgs{GroupID: 1, PayerID: 2, PayeeID: 3, Amount: amount}

	s.mockGroupRepo.EXPECT().IsMember(gomock.Any(), args.GroupID, gomock.Any()).Return(true, nil).Times(2)

	s.expectTransaction()

	s.mockPaymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(&domain.Payment{ID: 11}, nil)

	deltaErr := errors.New("deadlock detected")
	s.mockBalanceRepo.EXPECT().
		ApplyDelta(gomock.Any(), args.GroupID, args.PayerID, gomock.Any()).
		Return(nil)
	s.mockBalanceRepo.EXPECT().
		ApplyDelta(gomock.Any(), args.GroupID, args.PayeeID, gomock.Any()).
		Return(deltaErr)

	payment, err := s.paymentService.Create(s.T().Context(), args)
	s.Require().ErrorIs(err, deltaErr)
	s.Nil(payment)
}

func (s *PaymentServiceTestSuite) TestGetByGroupID() {
	payments := []domain.Payment{
		{ID: 2, GroupID: 1, PayerID: 2, PayeeID: 3, Amount: decimal.NewFromInt(10)},
		{ID: 1, GroupID: 1, PayerID: 3, PayeeID: 2, Amount: decimal.NewFromInt(5)},
	}
	s.mockPaymentRepo.EXPECT().GetByGroupID(gomock.Any(), int64(1)).Return(payments, nil)

	got, err := s.paymentService.GetByGroupID(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(payments, got)
}
