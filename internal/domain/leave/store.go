package leave

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("leave record not found")
	ErrDuplicateType = errors.New("leave type already exists")
	ErrDecided       = errors.New("leave request already decided")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateType(ctx context.Context, in NewType) (*Type, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO leave_types (name, description, allowed_days)
    VALUES ($1, $2, $3)
    RETURNING id, name, description, allowed_days, created_at
  `, in.Name, in.Description, in.AllowedDays)

	var t Type
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.AllowedDays, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateType
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTypes(ctx context.Context) ([]Type, error) {
	rows, err := s.DB.Query(ctx,
		"SELECT id, name, description, allowed_days, created_at FROM leave_types ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Type
	for rows.Next() {
		var t Type
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.AllowedDays, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) CountTypes(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_types").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

const requestColumns = `
  lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.reason,
  lr.status, lr.approved_by, lr.approval_date, lr.approval_notes,
  lr.created_at, lr.updated_at, lt.name, u.full_name`

const requestJoins = `
  FROM leave_requests lr
  JOIN leave_types lt ON lt.id = lr.leave_type_id
  JOIN employees e ON e.id = lr.employee_id
  JOIN users u ON u.id = e.user_id`

func (s *Store) CreateRequest(ctx context.Context, in NewRequest) (*Request, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, reason)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, in.EmployeeID, in.LeaveTypeID, in.StartDate, in.EndDate, in.Reason).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetRequest(ctx, id)
}

func (s *Store) GetRequest(ctx context.Context, id int64) (*Request, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+requestColumns+requestJoins+" WHERE lr.id = $1", id)
	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *Store) ListRequests(ctx context.Context, filter RequestFilter) ([]Request, error) {
	query := "SELECT" + requestColumns + requestJoins
	var conditions []string
	var args []any

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, "lr.employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "lr.status = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC, lr.id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *request)
	}
	return out, rows.Err()
}

// UpdateStatus records a decision. Only pending requests can be decided; a
// second decision on the same request returns ErrDecided.
func (s *Store) UpdateStatus(ctx context.Context, id int64, update StatusUpdate) (*Request, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, approved_by = $2, approval_date = now(), approval_notes = $3, updated_at = now()
    WHERE id = $4 AND status = $5
  `, update.Status, update.ApprovedBy, update.Notes, id, StatusPending)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing request from one already decided.
		if _, err := s.GetRequest(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrDecided
	}
	return s.GetRequest(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*Request, error) {
	var request Request
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.LeaveTypeID,
		&request.StartDate, &request.EndDate, &request.Reason,
		&request.Status, &request.ApprovedBy, &request.ApprovalDate, &request.ApprovalNotes,
		&request.CreatedAt, &request.UpdatedAt,
		&request.LeaveTypeName, &request.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
