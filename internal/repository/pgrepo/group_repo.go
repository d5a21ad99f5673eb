package pgrepo

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type GroupRepository struct {
	db uow.DBTX
}

func NewGroupRepository(db uow.DBTX) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, args repoargs.CreateGroup) (*domain.Group, error) {
	const query = `
		INSERT INTO groups (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at, name, description, created_by`

	var group domain.Group
	err := r.db.QueryRow(ctx, query, args.Name, args.Description, args.CreatedBy).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt, &group.Name, &group.Description, &group.CreatedBy)
	if err != nil {
		return nil, convertErr(err, "creating group %s", args.Name)
	}
	return &group, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	const query = `
		SELECT id, created_at, updated_at, name, description, created_by
		FROM groups
		WHERE id = $1`

	var group domain.Group
	err := r.db.QueryRow(ctx, query, id).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt, &group.Name, &group.Description, &group.CreatedBy)
	if err != nil {
		return nil, convertErr(err, "finding group %d", id)
	}
	return &group, nil
}

func (r *GroupRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Group, error) {
	const query = `
		SELECT g.id, g.created_at, g.updated_at, g.name, g.description, g.created_by
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, convertErr(err, "getting groups by userID %d", userID)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var group domain.Group
		if scanErr := rows.Scan(
			&group.ID, &group.CreatedAt, &group.UpdatedAt,
			&group.Name, &group.Description, &group.CreatedBy,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning group row")
		}
		groups = append(groups, group)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating group rows")
	}
	return groups, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, args repoargs.AddGroupMember) error {
	const query = `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, args.GroupID, args.UserID, args.Role)
	return convertErr(err, "adding member %d to group %d", args.UserID, args.GroupID)
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	const query = `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, groupID, userID)
	if err != nil {
		return convertErr(err, "removing member %d from group %d", userID, groupID)
	}
	if tag.RowsAffected() == 0 {
		// удалять нечего - участника в группе нет.
		return convertErr(pgx.ErrNoRows, "removing member %d from group %d", userID, groupID)
	}
	return nil
}

// GetMembers возвращает участников группы в детерминированном порядке (по
// username), чтобы пересчет балансов был воспроизводим.
func (r *GroupRepository) GetMembers(ctx context.Context, groupID int64) ([]domain.Member, error) {
	const query = `
		SELECT gm.user_id, u.username, gm.role
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY u.username`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, convertErr(err, "getting members of group %d", groupID)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		if scanErr := rows.Scan(&member.UserID, &member.Username, &member.Role); scanErr != nil {
			return nil, convertErr(scanErr, "scanning member row")
		}
		members = append(members, member)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating member rows")
	}
	return members, nil
}

func (r *GroupRepository) GetMemberRole(ctx context.Context, groupID, userID int64) (domain.MemberRoleType, error) {
	const query = `SELECT role FROM group_members WHERE group_id = $1 AND user_id = $2`

	var role domain.MemberRoleType
	if err := r.db.QueryRow(ctx, query, groupID, userID).Scan(&role); err != nil {
		return "", convertErr(err, "getting role of member %d in group %d", userID, groupID)
	}
	return role, nil
}

func (r *GroupRepository) UpdateMemberRole(ctx context.Context, groupID, userID int64, role domain.MemberRoleType) error {
	const query = `UPDATE group_members SET role = $3 WHERE group_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, groupID, userID, role)
	if err != nil {
		return convertErr(err, "updating role of member %d in group %d", userID, groupID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating role of member %d in group %d", userID, groupID)
	}
	return nil
}

func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, groupID, userID).Scan(&exists); err != nil {
		return false, convertErr(err, "checking membership of user %d in group %d", userID, groupID)
	}
	return exists, nil
}
