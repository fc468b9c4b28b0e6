package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/querier"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const userColumns = `id, email, username, COALESCE(full_name, ''), is_active, role, created_at, updated_at`

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(s.DB.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*User, error) {
	return scanUser(s.DB.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

func (s *Store) UserByID(ctx context.Context, id int64) (*User, error) {
	return scanUser(s.DB.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// CredentialByIdentifier loads the stored hash alongside the user for login.
// The identifier is tried as an email first, then as a username.
func (s *Store) CredentialByIdentifier(ctx context.Context, identifier string) (*User, string, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`, hashed_password
    FROM users
    WHERE email = $1
  `, identifier)
	user, hash, err := scanUserWithHash(row)
	if err == nil {
		return user, hash, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	row = s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`, hashed_password
    FROM users
    WHERE username = $1
  `, identifier)
	return scanUserWithHash(row)
}

func (s *Store) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	return CreateUserIn(ctx, s.DB, in)
}

// CreateUserIn inserts a user through the given querier, which may be a
// transaction owned by the employee registry.
func CreateUserIn(ctx context.Context, q querier.Querier, in NewUser) (*User, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = RoleEmployee
	}

	row := q.QueryRow(ctx, `
    INSERT INTO users (email, username, hashed_password, full_name, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING `+userColumns+`
  `, in.Email, in.Username, hash, in.FullName, role)

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE users
    SET full_name = COALESCE($1, full_name),
        role = COALESCE($2, role),
        is_active = COALESCE($3, is_active),
        updated_at = now()
    WHERE id = $4
    RETURNING `+userColumns+`
  `, update.FullName, update.Role, update.IsActive, id)
	return scanUser(row)
}

// DeactivateUser is the soft-delete path: the row stays, is_active flips off.
func (s *Store) DeactivateUser(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.FullName, &user.IsActive, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func scanUserWithHash(row pgx.Row) (*User, string, error) {
	var user User
	var hash string
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.FullName, &user.IsActive, &user.Role, &user.CreatedAt, &user.UpdatedAt, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return &user, hash, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
