package attendance

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("attendance record not found")
	ErrDuplicate = errors.New("attendance for this date already logged")
)

const recordColumns = `id, employee_id, date, status, check_in_time::text, check_out_time::text, notes, created_at, updated_at`

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Mark inserts exactly one record per (employee, date); the unique constraint
// turns a duplicate into ErrDuplicate regardless of payload.
func (s *Store) Mark(ctx context.Context, in MarkInput) (*Record, error) {
	status := in.Status
	if status == "" {
		status = StatusAbsent
	}
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, status, check_in_time, check_out_time, notes)
    VALUES ($1, $2, $3, $4::time, $5::time, $6)
    RETURNING `+recordColumns+`
  `, in.EmployeeID, in.Date, status, in.CheckInTime, in.CheckOutTime, in.Notes)

	record, err := scanRecord(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return record, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+recordColumns+" FROM attendance WHERE id = $1", id)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *Store) Update(ctx context.Context, id int64, in UpdateInput) (*Record, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if in.EmployeeID != nil {
		add("employee_id", *in.EmployeeID)
	}
	if in.Date != nil {
		add("date", *in.Date)
	}
	if in.Status != nil {
		add("status", *in.Status)
	}
	if in.CheckInTime != nil {
		add("check_in_time", *in.CheckInTime)
	}
	if in.CheckOutTime != nil {
		add("check_out_time", *in.CheckOutTime)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if len(sets) == 0 {
		return s.Get(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	row := s.DB.QueryRow(ctx,
		"UPDATE attendance SET "+strings.Join(sets, ", ")+" WHERE id = $"+strconv.Itoa(len(args))+" RETURNING "+recordColumns,
		args...)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return record, nil
}

// Query returns raw records matching the filter, oldest first.
func (s *Store) Query(ctx context.Context, filter Filter) ([]Record, error) {
	query := "SELECT " + recordColumns + " FROM attendance"
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, condition+" $"+strconv.Itoa(len(args)))
	}

	if filter.Date != nil {
		add("date =", *filter.Date)
	}
	if filter.StartDate != nil {
		add("date >=", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("date <=", *filter.EndDate)
	}
	if filter.EmployeeID != nil {
		add("employee_id =", *filter.EmployeeID)
	}
	if filter.Status != "" {
		add("status =", filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, employee_id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	return out, rows.Err()
}

func (s *Store) RecordsForDate(ctx context.Context, date time.Time) ([]Record, error) {
	return s.Query(ctx, Filter{Date: &date})
}

func (s *Store) History(ctx context.Context, employeeID int64, start, end time.Time) ([]Record, error) {
	return s.Query(ctx, Filter{EmployeeID: &employeeID, StartDate: &start, EndDate: &end})
}

func (s *Store) CountByDateStatus(ctx context.Context, date time.Time, status string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM attendance WHERE date = $1 AND status = $2", date, status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row pgx.Row) (*Record, error) {
	return scanRecordRow(row)
}

func scanRecordRow(row rowScanner) (*Record, error) {
	var record Record
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.CheckInTime, &record.CheckOutTime, &record.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = &createdAt
	record.UpdatedAt = &updatedAt
	return &record, nil
}
