package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/querier"
)

var (
	ErrNotFound  = errors.New("directory record not found")
	ErrDuplicate = errors.New("directory record already exists")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ResolveDepartment turns an id-or-name reference into a concrete department
// id, creating the department when the name is unknown. Concurrent creators of
// the same new name are serialized by the unique index: the insert uses
// ON CONFLICT DO NOTHING and the loser re-selects the winner's row.
func ResolveDepartment(ctx context.Context, q querier.Querier, ref Ref) (Resolution, error) {
	if !ref.IsName() {
		return Resolution{ID: ref.ID}, nil
	}

	var id int64
	err := q.QueryRow(ctx, "SELECT id FROM departments WHERE lower(name) = lower($1)", ref.Name).Scan(&id)
	if err == nil {
		return Resolution{ID: id}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Resolution{}, err
	}

	name := NormalizeDepartmentName(ref.Name)
	err = q.QueryRow(ctx, `
    INSERT INTO departments (name) VALUES ($1)
    ON CONFLICT DO NOTHING
    RETURNING id
  `, name).Scan(&id)
	if err == nil {
		return Resolution{ID: id, Created: true}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Resolution{}, err
	}

	// Lost the race; the winner's row exists now.
	if err := q.QueryRow(ctx, "SELECT id FROM departments WHERE lower(name) = lower($1)", name).Scan(&id); err != nil {
		return Resolution{}, err
	}
	return Resolution{ID: id}, nil
}

// ResolvePosition is the position counterpart of ResolveDepartment. The title
// carries its own case-insensitive unique index, so the same race policy holds.
func ResolvePosition(ctx context.Context, q querier.Querier, ref Ref) (Resolution, error) {
	if !ref.IsName() {
		return Resolution{ID: ref.ID}, nil
	}

	var id int64
	err := q.QueryRow(ctx, "SELECT id FROM positions WHERE lower(title) = lower($1)", ref.Name).Scan(&id)
	if err == nil {
		return Resolution{ID: id}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Resolution{}, err
	}

	title := NormalizePositionTitle(ref.Name)
	err = q.QueryRow(ctx, `
    INSERT INTO positions (title) VALUES ($1)
    ON CONFLICT DO NOTHING
    RETURNING id
  `, title).Scan(&id)
	if err == nil {
		return Resolution{ID: id, Created: true}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Resolution{}, err
	}

	if err := q.QueryRow(ctx, "SELECT id FROM positions WHERE lower(title) = lower($1)", title).Scan(&id); err != nil {
		return Resolution{}, err
	}
	return Resolution{ID: id}, nil
}

func (s *Store) CreateDepartment(ctx context.Context, name, description string) (*Department, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, description)
    VALUES ($1, $2)
    RETURNING id, name, COALESCE(description, ''), created_at, updated_at
  `, name, nullIfEmpty(description))
	var dept Department
	if err := row.Scan(&dept.ID, &dept.Name, &dept.Description, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &dept, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at, updated_at
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		var dept Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Description, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, dept)
	}
	return out, rows.Err()
}

func (s *Store) CreatePosition(ctx context.Context, title, description string, departmentID *int64) (*Position, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO positions (title, description, department_id)
    VALUES ($1, $2, $3)
    RETURNING id, title, COALESCE(description, ''), department_id, created_at, updated_at
  `, title, nullIfEmpty(description), departmentID)
	var pos Position
	if err := row.Scan(&pos.ID, &pos.Title, &pos.Description, &pos.DepartmentID, &pos.CreatedAt, &pos.UpdatedAt); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &pos, nil
}

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(description, ''), department_id, created_at, updated_at
    FROM positions
    ORDER BY title
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var pos Position
		if err := rows.Scan(&pos.ID, &pos.Title, &pos.Description, &pos.DepartmentID, &pos.CreatedAt, &pos.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, rows.Err()
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
