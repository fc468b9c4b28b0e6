package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/auth"
	"hrms/internal/platform/config"
)

// Seed makes sure the admin login and the default leave types exist. It is
// idempotent and safe to run on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg); err != nil {
		return err
	}
	return ensureLeaveTypes(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, username, full_name, hashed_password, role, is_active)
    VALUES ($1, $2, $3, $4, $5, TRUE)
    ON CONFLICT (email) DO NOTHING
  `, cfg.SeedAdminEmail, cfg.SeedAdminUsername, "Administrator", hash, auth.RoleAdmin)
	return err
}

func ensureLeaveTypes(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM leave_types").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name        string
		description string
		allowedDays int
	}{
		{"Annual Leave", "Paid annual vacation", 14},
		{"Casual Leave", "Short-notice personal leave", 7},
		{"Sick Leave", "Medical leave", 7},
		{"Unpaid Leave", "Leave without pay", 0},
	}
	for _, lt := range defaults {
		_, err := pool.Exec(ctx, `
      INSERT INTO leave_types (name, description, allowed_days)
      VALUES ($1, $2, $3)
      ON CONFLICT (name) DO NOTHING
    `, lt.name, lt.description, lt.allowedDays)
		if err != nil {
			return err
		}
	}
	return nil
}
