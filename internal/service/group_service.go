package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
)

type GroupService struct {
	uow       uow.UOW
	groupRepo GroupRepository
	userRepo  UserRepository
}

func NewGroupService(u uow.UOW) (*GroupService, error) {
	groupRepo, groupRepoErr := uow.GetRepositoryAs[GroupRepository](u, uow.RepositoryName(repoargs.GroupRepoName))
	if groupRepoErr != nil {
		return nil, groupRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &GroupService{
		uow:       u,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}, nil
}

type CreateGroupArgs struct {
	Name        string
	Description string
	CreatedBy   int64
}

// Create создает группу и добавляет создателя первым участником с ролью admin.
// Обе записи выполняются в одной транзакции.
func (s *GroupService) Create(ctx context.Context, args CreateGroupArgs) (*domain.Group, error) {
	var group *domain.Group
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		groupRepo, repoErr := uow.GetAs[GroupRepository](tx, uow.RepositoryName(repoargs.GroupRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		group, createErr = groupRepo.CreateGroup(c, repoargs.CreateGroup{
			Name:        args.Name,
			Description: args.Description,
			CreatedBy:   args.CreatedBy,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return groupRepo.AddMember(c, repoargs.AddGroupMember{ //nolint:wrapcheck
			GroupID: group.ID,
			UserID:  args.CreatedBy,
			Role:    domain.MemberRoleAdmin,
		})
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating group: %w", txErr)
	}
	return group, nil
}

func (s *GroupService) GetByUserID(ctx context.Context, userID int64) ([]domain.Group, error) {
	groups, err := s.groupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return groups, nil
}

type GroupDetails struct {
	Group   domain.Group
	Members []domain.Member
}

func (s *GroupService) Details(ctx context.Context, groupID int64) (*GroupDetails, error) {
	group, groupErr := s.groupRepo.FindByID(ctx, groupID)
	if groupErr != nil {
		return nil, groupErr //nolint:wrapcheck
	}
	members, membersErr := s.groupRepo.GetMembers(ctx, groupID)
	if membersErr != nil {
		return nil, membersErr //nolint:wrapcheck
	}
	return &GroupDetails{Group: *group, Members: members}, nil
}

// AddMemberByUsername добавляет участника по имени. Несуществующий юзер -
// domain.ErrRecordNotFound, уже состоящий в группе - domain.ErrDuplicateKey.
func (s *GroupService) AddMemberByUsername(ctx context.Context, groupID int64, username string) (*domain.Member, error) {
	user, findErr := s.userRepo.FindUserByUsername(ctx, username)
	if findErr != nil {
		return nil, fmt.Errorf("adding group member: %w", findErr)
	}

	addErr := s.groupRepo.AddMember(ctx, repoargs.AddGroupMember{
		GroupID: groupID,
		UserID:  user.ID,
		Role:    domain.MemberRoleMember,
	})
	if addErr != nil {
		return nil, fmt.Errorf("adding group member: %w", addErr)
	}

	return &domain.Member{
		UserID:   user.ID,
		Username: user.Username,
		Role:     domain.MemberRoleMember,
	}, nil
}

func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID int64) error {
	if err := s.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("removing group member: %w", err)
	}
	return nil
}

// UpdateMemberRole меняет роль участника. Менять роли может только участник с
// ролью admin: остальным (и не-участникам) вернется domain.ErrNotGroupAdmin.
// Несуществующий участник - domain.ErrRecordNotFound.
func (s *GroupService) UpdateMemberRole(ctx context.Context, groupID, actorID, memberID int64, role domain.MemberRoleType) error {
	actorRole, roleErr := s.groupRepo.GetMemberRole(ctx, groupID, actorID)
	if roleErr != nil {
		if errors.Is(roleErr, domain.ErrRecordNotFound) {
			return domain.ErrNotGroupAdmin
		}
		return fmt.Errorf("updating member role: %w", roleErr)
	}
	if actorRole != domain.MemberRoleAdmin {
		return domain.ErrNotGroupAdmin
	}

	if updErr := s.groupRepo.UpdateMemberRole(ctx, groupID, memberID, role); updErr != nil {
		return fmt.Errorf("updating member role: %w", updErr)
	}
	return nil
}

func (s *GroupService) GetMembers(ctx context.Context, groupID int64) ([]domain.Member, error) {
	members, err := s.groupRepo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return members, nil
}

// IsMember - проверка доступа, которой пользуются хэндлеры перед любыми
// операциями над данными группы.
func (s *GroupService) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	ok, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return ok, nil
}
