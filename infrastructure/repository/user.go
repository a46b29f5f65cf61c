package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
	"github.com/vfg2006/brand-projection-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "name", "password_hash", "active", "role_id", "created_at", "updated_at"}

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	conn *database.Connection
}

func NewUserRepository(conn *database.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	timestamp := now()
	user.CreatedAt = timestamp
	user.UpdatedAt = timestamp

	query, args, err := r.conn.StatementBuilder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Name, user.PasswordHash, user.Active, user.RoleID, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir inserção de usuário")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar usuário %s", user.Username)
	}

	user.Role = domain.RoleName(user.RoleID)

	return user, nil
}

// GetUserByUsername retorna nil, nil quando o usuário não existe.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username})
}

// GetUserByID retorna nil, nil quando o usuário não existe.
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de usuário")
	}

	user, err := scanUser(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(userColumns...).
		From(usersTable).
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de usuários")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler usuário")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de usuários")
	}

	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Role = domain.RoleName(user.RoleID)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return &user, nil
}
