package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/service"
	"github.com/gin-gonic/gin"
)

type GroupsHandler struct {
	groupService GroupServicer
}

func NewGroupsHandler(groupService GroupServicer) *GroupsHandler {
	return &GroupsHandler{
		groupService: groupService,
	}
}

type GroupCreateParams struct {
	Name        string `binding:"required,min=1,max=100" json:"name"`
	Description string `binding:"max=500"                json:"description"`
}

type GroupResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MemberResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Create POST RouteGroup + GroupsRoute. Создает группу, текущий юзер становится
// ее администратором.
func (h *GroupsHandler) Create(c *gin.Context) {
	var params GroupCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	group, createErr := h.groupService.Create(ctx, service.CreateGroupArgs{
		Name:        params.Name,
		Description: params.Description,
		CreatedBy:   getUserIDFromContext(c),
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": convertGroup(*group)})
}

// Index GET RouteGroup + GroupsRoute. Группы текущего юзера.
func (h *GroupsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	groups, err := h.groupService.GetByUserID(ctx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	res := make([]GroupResponse, len(groups))
	for i, group := range groups {
		res[i] = convertGroup(group)
	}
	c.JSON(http.StatusOK, gin.H{"groups": res})
}

// Show GET RouteGroup + GroupRoute. Группа с участниками; доступна только ее
// участникам.
func (h *GroupsHandler) Show(c *gin.Context) {
	groupID, ok := paramInt64(c, "groupId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	details, err := h.groupService.Details(ctx, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group":   convertGroup(details.Group),
		"members": convertMembers(details.Members),
	})
}

type GroupAddMemberParams struct {
	Username string `binding:"required,min=1,max=15" json:"username"`
}

// AddMember POST RouteGroup + GroupMembersRoute. Добавляет участника по имени.
func (h *GroupsHandler) AddMember(c *gin.Context) {
	groupID, ok := paramInt64(c, "groupId")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}

	var params GroupAddMemberParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	member, addErr := h.groupService.AddMemberByUsername(ctx, groupID, params.Username)
	if addErr != nil {
		switch {
		case errors.Is(addErr, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(addErr, domain.ErrDuplicateKey):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "user is already a member"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, addErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": MemberResponse{
		UserID:   member.UserID,
		Username: member.Username,
		Role:     string(member.Role),
	}})
}

// RemoveMember DELETE RouteGroup + GroupMemberRoute.
func (h *GroupsHandler) RemoveMember(c *gin.Context) {
	groupID, groupOK := paramInt64(c, "groupId")
	memberID, memberOK := paramInt64(c, "memberId")
	if !groupOK || !memberOK {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if !h.requireMembership(c, ctx, groupID) {
		return
	}

	if err := h.groupService.RemoveMember(ctx, groupID, memberID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
}

type GroupMemberRoleParams struct {
	Role string `binding:"required,oneof=admin member" json:"role"`
}

// UpdateMemberRole PATCH RouteGroup + GroupMemberRoleRoute. Менять роли может
// только admin группы.
func (h *GroupsHandler) UpdateMemberRole(c *gin.Context) {
	groupID, groupOK := paramInt64(c, "groupId")
	memberID, memberOK := paramInt64(c, "memberId")
	if !groupOK || !memberOK {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var params GroupMemberRoleParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.groupService.UpdateMemberRole(ctx, groupID, getUserIDFromContext(c), memberID, domain.MemberRoleType(params.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotGroupAdmin):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "member not found"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// requireMembership отклоняет запрос 403, если текущий юзер не состоит в группе.
// Возвращает false, когда ответ уже записан.
func (h *GroupsHandler) requireMembership(c *gin.Context, ctx context.Context, groupID int64) bool {
	isMember, err := h.groupService.IsMember(ctx, groupID, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return false
	}
	if !isMember {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a member of this group"})
		return false
	}
	return true
}

func convertGroup(group domain.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		CreatedAt:   group.CreatedAt,
	}
}

func convertMembers(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i, member := range members {
		res[i] = MemberResponse{
			UserID:   member.UserID,
			Username: member.Username,
			Role:     string(member.Role),
		}
	}
	return res
}
