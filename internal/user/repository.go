package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, u *User) error
}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxUserRepository{
		pool: pool,
	}
}

// Role names are aggregated as a JSON array in a correlated subquery so a
// user and their roles come back in one round trip.
const userSelect = `
	SELECT
		u.id,
		u.username,
		u.password_hash,
		COALESCE(
			(
				SELECT json_agg(r.name ORDER BY r.name)
				FROM public.user_roles ur
				JOIN public.roles r ON ur.role_id = r.id
				WHERE ur.user_id = u.id
			),
			'[]'::json
		) AS roles
	FROM public.users u
`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var rolesJSON []byte

	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &rolesJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user failed: %w", err)
	}

	if len(rolesJSON) > 0 {
		if err := json.Unmarshal(rolesJSON, &u.Roles); err != nil {
			return nil, fmt.Errorf("unmarshal roles for user %d failed: %w", u.ID, err)
		}
	}

	return &u, nil
}

func (r *pgxUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.pool.QueryRow(ctx, userSelect+" WHERE u.username = $1", username)
	return scanUser(row)
}

func (r *pgxUserRepository) GetByID(ctx context.Context, id int) (*User, error) {
	row := r.pool.QueryRow(ctx, userSelect+" WHERE u.id = $1", id)
	return scanUser(row)
}

func (r *pgxUserRepository) Exists(ctx context.Context, id int) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("1").
		From("public.users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user exists query failed: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("user exists check failed: %w", err)
	}
	return true, nil
}

// Create inserts the user and attaches its role names inside one transaction.
func (r *pgxUserRepository) Create(ctx context.Context, u *User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create user tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertUser = `
		INSERT INTO public.users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := tx.QueryRow(ctx, insertUser, u.Username, u.PasswordHash).Scan(&u.ID); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	const attachRole = `
		INSERT INTO public.user_roles (user_id, role_id)
		SELECT $1, id FROM public.roles WHERE name = $2
	`

	for _, role := range u.Roles {
		ct, err := tx.Exec(ctx, attachRole, u.ID, role)
		if err != nil {
			return fmt.Errorf("attach role %q failed: %w", role, err)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("role %q does not exist", role)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create user tx failed: %w", err)
	}
	return nil
}
