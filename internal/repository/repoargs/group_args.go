package repoargs

import "github.com/fsdevblog/groupsplit/internal/domain"

type CreateGroup struct {
	Name        string
	Description string
	CreatedBy   int64
}

type AddGroupMember struct {
	GroupID int64
	UserID  int64
	Role    domain.MemberRoleType
}
