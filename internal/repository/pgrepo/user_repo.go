package pgrepo

import (
	"context"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/fsdevblog/groupsplit/internal/repository/repoargs"
	"github.com/fsdevblog/groupsplit/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	const query = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, username, password`

	var user domain.User
	err := r.db.QueryRow(ctx, query, args.Username, args.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Username)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
		SELECT id, created_at, updated_at, username, password
		FROM users
		WHERE username = $1`

	var user domain.User
	err := r.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return &user, nil
}
