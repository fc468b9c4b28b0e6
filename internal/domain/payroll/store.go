package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payroll record not found")

const recordColumns = `
  p.id, p.employee_id, p.month, p.basic_salary, p.bonus, p.deductions, p.net_salary,
  p.payment_date, p.payment_method, p.notes, p.created_at, p.updated_at,
  u.full_name, e.employee_id`

const recordJoins = `
  FROM payroll p
  JOIN employees e ON e.id = p.employee_id
  JOIN users u ON u.id = e.user_id`

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, in NewRecord) (*Record, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll (employee_id, month, basic_salary, bonus, deductions, net_salary,
                         payment_date, payment_method, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id
  `, in.EmployeeID, in.Month, in.BasicSalary, in.Bonus, in.Deductions, in.Net(),
		in.PaymentDate, in.PaymentMethod, in.Notes).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+recordColumns+recordJoins+" WHERE p.id = $1", id)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	return s.list(ctx, "SELECT"+recordColumns+recordJoins+" ORDER BY p.month DESC, p.id DESC")
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID int64) ([]Record, error) {
	return s.list(ctx,
		"SELECT"+recordColumns+recordJoins+" WHERE p.employee_id = $1 ORDER BY p.month DESC, p.id DESC",
		employeeID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var record Record
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Month,
		&record.BasicSalary, &record.Bonus, &record.Deductions, &record.NetSalary,
		&record.PaymentDate, &record.PaymentMethod, &record.Notes,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName, &record.EmployeeCode,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
