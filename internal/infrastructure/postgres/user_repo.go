package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dominioncity/engage-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, firstname, lastname, email, phone_number, password_hash, points, date_registered`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (firstname, lastname, email, phone_number, password_hash, points, date_registered)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query,
		user.Firstname,
		user.Lastname,
		user.Email,
		user.PhoneNumber,
		user.PasswordHash,
		user.Points,
		user.DateRegistered,
	)

	created, err := scanUser(row)
	if err != nil {
		// The unique index on email is the authoritative check: a racing
		// registration loses here with 23505, not with a second row.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) AddPoints(ctx context.Context, id int64, delta int) (*domain.User, error) {
	// Single-statement increment so concurrent awards never lose updates.
	query := `
		UPDATE users
		SET    points = points + $2
		WHERE  id = $1
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query, id, delta)
	return scanUser(row)
}

func (r *UserRepository) All(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Firstname, &u.Lastname, &u.Email,
		&u.PhoneNumber, &u.PasswordHash, &u.Points, &u.DateRegistered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
