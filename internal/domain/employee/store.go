package employee

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/directory"
	"hrms/internal/platform/querier"
)

var ErrNotFound = errors.New("employee not found")

// createRetries bounds the retry on an employee_id uniqueness conflict; the
// generator reads max(id)+1, so a concurrent insert can collide at commit.
const createRetries = 3

const detailColumns = `
    e.id, e.user_id, e.employee_id, e.department_id, e.position_id,
    COALESCE(e.phone, ''), e.date_of_birth, e.date_of_joining, e.salary,
    COALESCE(e.address, ''), COALESCE(e.city, ''), COALESCE(e.state, ''),
    COALESCE(e.country, ''), COALESCE(e.postal_code, ''),
    COALESCE(u.full_name, ''), u.email, u.username, u.is_active,
    COALESCE(d.name, ''), COALESCE(p.title, ''),
    e.created_at, e.updated_at`

const detailJoins = `
    FROM employees e
    JOIN users u ON e.user_id = u.id
    LEFT JOIN departments d ON e.department_id = d.id
    LEFT JOIN positions p ON e.position_id = p.id`

type Store struct {
	DB              *pgxpool.Pool
	DefaultPassword string
}

func NewStore(db *pgxpool.Pool, defaultPassword string) *Store {
	return &Store{DB: db, DefaultPassword: defaultPassword}
}

// Create runs the whole multi-step flow in one transaction: user creation,
// department/position resolution, identifier assignment and the employee
// insert either all land or none do. A lost identifier race rolls back and
// retries the full transaction.
func (s *Store) Create(ctx context.Context, in NewEmployee) (*Employee, error) {
	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		id, err := s.createOnce(ctx, in)
		if err == nil {
			return s.Get(ctx, id)
		}
		if isUniqueViolation(err, "employees_employee_id_key") {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

func (s *Store) createOnce(ctx context.Context, in NewEmployee) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = UsernameFromEmail(in.Email)
	}

	user, err := auth.CreateUserIn(ctx, tx, auth.NewUser{
		Email:    in.Email,
		Username: username,
		FullName: in.FullName,
		Password: s.DefaultPassword,
		Role:     auth.RoleEmployee,
	})
	if err != nil {
		return 0, err
	}

	departmentID, err := resolveRef(ctx, tx, in.Department, directory.ResolveDepartment)
	if err != nil {
		return 0, err
	}
	positionID, err := resolveRef(ctx, tx, in.Position, directory.ResolvePosition)
	if err != nil {
		return 0, err
	}

	var next int64
	if err := tx.QueryRow(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM employees").Scan(&next); err != nil {
		return 0, err
	}

	var employeePK int64
	err = tx.QueryRow(ctx, `
    INSERT INTO employees (user_id, employee_id, department_id, position_id, phone,
      date_of_birth, date_of_joining, salary, address, city, state, country, postal_code)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `,
		user.ID, FormatEmployeeID(next), departmentID, positionID, nullIfEmpty(in.Phone),
		in.DateOfBirth, in.DateOfJoining, in.Salary, nullIfEmpty(in.Address),
		nullIfEmpty(in.City), nullIfEmpty(in.State), nullIfEmpty(in.Country), nullIfEmpty(in.PostalCode),
	).Scan(&employeePK)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return employeePK, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Employee, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+detailColumns+detailJoins+" WHERE e.id = $1", id)
	return scanEmployee(row)
}

func (s *Store) GetByUserID(ctx context.Context, userID int64) (*Employee, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+detailColumns+detailJoins+" WHERE e.user_id = $1", userID)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context, filter ListFilter, limit, offset int) (ListResult, error) {
	where, args := buildListWhere(filter)

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1)"+detailJoins+where, args...).Scan(&total); err != nil {
		return ListResult{}, err
	}

	query := "SELECT" + detailColumns + detailJoins + where +
		" ORDER BY e.id LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return ListResult{}, err
	}
	defer rows.Close()

	out := make([]Employee, 0, limit)
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return ListResult{}, err
		}
		out = append(out, *emp)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, err
	}
	return ListResult{Employees: out, Total: total}, nil
}

// Update applies only the supplied fields; id-or-name references resolve
// through the directory inside the same transaction.
func (s *Store) Update(ctx context.Context, id int64, update Update) (*Employee, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Department != nil {
		departmentID, err := resolveRef(ctx, tx, *update.Department, directory.ResolveDepartment)
		if err != nil {
			return nil, err
		}
		add("department_id", departmentID)
	}
	if update.Position != nil {
		positionID, err := resolveRef(ctx, tx, *update.Position, directory.ResolvePosition)
		if err != nil {
			return nil, err
		}
		add("position_id", positionID)
	}
	if update.Phone != nil {
		add("phone", nullIfEmpty(*update.Phone))
	}
	if update.DateOfBirth != nil {
		add("date_of_birth", *update.DateOfBirth)
	}
	if update.Salary != nil {
		add("salary", *update.Salary)
	}
	if update.Address != nil {
		add("address", nullIfEmpty(*update.Address))
	}
	if update.City != nil {
		add("city", nullIfEmpty(*update.City))
	}
	if update.State != nil {
		add("state", nullIfEmpty(*update.State))
	}
	if update.Country != nil {
		add("country", nullIfEmpty(*update.Country))
	}
	if update.PostalCode != nil {
		add("postal_code", nullIfEmpty(*update.PostalCode))
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = now()")
		args = append(args, id)
		cmd, err := tx.Exec(ctx, "UPDATE employees SET "+strings.Join(sets, ", ")+" WHERE id = $"+strconv.Itoa(len(args)), args...)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

// Delete hard-deletes the employee row; attendance and leave requests go with
// it via the FK cascade. The linked user record is deliberately left alone.
func (s *Store) Delete(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// UsernameFromEmail derives the default username from the email local part.
func UsernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local
}

func buildListWhere(filter ListFilter) (string, []any) {
	var conditions []string
	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(u.full_name ILIKE $"+n+" OR u.email ILIKE $"+n+" OR e.employee_id ILIKE $"+n+")")
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, "e.department_id = $"+strconv.Itoa(len(args)))
	}
	switch filter.Status {
	case "active":
		conditions = append(conditions, "u.is_active = TRUE")
	case "inactive":
		conditions = append(conditions, "u.is_active = FALSE")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	emp, err := scanEmployeeRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return emp, nil
}

func scanEmployeeRow(row rowScanner) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeID, &emp.DepartmentID, &emp.PositionID,
		&emp.Phone, &emp.DateOfBirth, &emp.DateOfJoining, &emp.Salary,
		&emp.Address, &emp.City, &emp.State, &emp.Country, &emp.PostalCode,
		&emp.FullName, &emp.Email, &emp.Username, &emp.IsActive,
		&emp.Department, &emp.Position,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func resolveRef(ctx context.Context, tx querier.Querier, ref directory.Ref, resolve func(context.Context, querier.Querier, directory.Ref) (directory.Resolution, error)) (*int64, error) {
	if !ref.Set {
		return nil, nil
	}
	resolution, err := resolve(ctx, tx, ref)
	if err != nil {
		return nil, err
	}
	return &resolution.ID, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
