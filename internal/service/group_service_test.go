package service

import (
	"testing"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/internal/service/mocks"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	uowmocks "github.com/fsdevblog/groupsplit/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type GroupServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockGroupRepo *mocks.MockGroupRepository
	mockUserRepo  *mocks.MockUserRepository
	groupService  *GroupService
}

func TestGroupServiceSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}

func (s *GroupServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockGroupRepo = mocks.NewMockGroupRepository(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.GroupRepoName)).
		Return(s.mockGroupRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	groupService, servErr := NewGroupService(s.mockUOW)
	s.Require().NoError(servErr)
	s.groupService = groupService
}

// Роль меняет только admin группы.
func (s *GroupServiceTestSuite) TestUpdateMemberRole() {
	s.mockGroupRepo.EXPECT().
		GetMemberRole(gomock.Any(), int64(1), int64(1)).
		Return(domain.MemberRoleAdmin, nil)
	s.mockGroupRepo.EXPECT().
		UpdateMemberRole(gomock.Any(), int64(1), int64(2), domain.MemberRoleAdmin).
		Return(nil)

	err := s.groupService.UpdateMemberRole(s.T().Context(), 1, 1, 2, domain.MemberRoleAdmin)
	s.Require().NoError(err)
}

func (s *GroupServiceTestSuite) TestUpdateMemberRoleRejectsNonAdmin() {
	s.mockGroupRepo.EXPECT().
		GetMemberRole(gomock.Any(), int64(1), int64(2)).
		Return(domain.MemberRoleMember, nil)
	s.mockGroupRepo.EXPECT().
		UpdateMemberRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	err := s.groupService.UpdateMemberRole(s.T().Context(), 1, 2, 3, domain.MemberRoleAdmin)
	s.Require().ErrorIs(err, domain.ErrNotGroupAdmin)
}

// Не-участник группы получает тот же отказ, что и участник без прав.
func (s *GroupServiceTestSuite) TestUpdateMemberRoleRejectsOutsider() {
	s.mockGroupRepo.EXPECT().
		GetMemberRole(gomock.Any(), int64(1), int64(99)).
		Return(domain.MemberRoleType(""), domain.ErrRecordNotFound)

	err := s.groupService.UpdateMemberRole(s.T().Context(), 1, 99, 2, domain.MemberRoleMember)
	s.Require().ErrorIs(err, domain.ErrNotGroupAdmin)
}

func (s *GroupServiceTestSuite) TestUpdateMemberRoleUnknownMember() {
	s.mockGroupRepo.EXPECT().
		GetMemberRole(gomock.Any(), int64(1), int64(1)).
		Return(domain.MemberRoleAdmin, nil)
	s.mockGroupRepo.EXPECT().
		UpdateMemberRole(gomock.Any(), int64(1), int64(99), domain.MemberRoleMember).
		Return(domain.ErrRecordNotFound)

	err := s.groupService.UpdateMemberRole(s.T().Context(), 1, 1, 99, domain.MemberRoleMember)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
