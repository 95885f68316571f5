package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nadialowe/chartwell/internal/domain"
)

// SQLitePresetRepo implements PresetRepo using a SQLite database.
type SQLitePresetRepo struct {
	db *sql.DB
}

// NewSQLitePresetRepo creates a new SQLitePresetRepo.
func NewSQLitePresetRepo(db *sql.DB) *SQLitePresetRepo {
	return &SQLitePresetRepo{db: db}
}

func (r *SQLitePresetRepo) Create(ctx context.Context, p *domain.RangePreset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO range_presets (id, name, period, start_at, end_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableString(p.Selection.Period),
		nullableTimeToString(p.Selection.Start),
		nullableTimeToString(p.Selection.End),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting range preset: %w", err)
	}
	return nil
}

func (r *SQLitePresetRepo) GetByName(ctx context.Context, name string) (*domain.RangePreset, error) {
	query := `SELECT id, name, period, start_at, end_at, created_at, updated_at
		FROM range_presets WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)
	return r.scanPreset(row)
}

func (r *SQLitePresetRepo) List(ctx context.Context) ([]*domain.RangePreset, error) {
	query := `SELECT id, name, period, start_at, end_at, created_at, updated_at
		FROM range_presets ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing range presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.RangePreset
	for rows.Next() {
		p, err := r.scanPresetRow(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *SQLitePresetRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM range_presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting range preset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting range preset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("range preset %q: %w", name, ErrNotFound)
	}
	return nil
}

// scanPreset scans a single preset from a *sql.Row.
func (r *SQLitePresetRepo) scanPreset(row *sql.Row) (*domain.RangePreset, error) {
	var p domain.RangePreset
	var period, startStr, endStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &period, &startStr, &endStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("range preset: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning range preset: %w", err)
	}
	return r.populatePreset(&p, period, startStr, endStr, createdAtStr, updatedAtStr)
}

// scanPresetRow scans a preset from *sql.Rows during list iteration.
func (r *SQLitePresetRepo) scanPresetRow(rows *sql.Rows) (*domain.RangePreset, error) {
	var p domain.RangePreset
	var period, startStr, endStr sql.NullString
	var createdAtStr, updatedAtStr string

	if err := rows.Scan(&p.ID, &p.Name, &period, &startStr, &endStr, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning range preset: %w", err)
	}
	return r.populatePreset(&p, period, startStr, endStr, createdAtStr, updatedAtStr)
}

func (r *SQLitePresetRepo) populatePreset(p *domain.RangePreset, period, startStr, endStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.RangePreset, error) {
	if period.Valid {
		p.Selection = domain.RelativeSelection(period.String)
	} else {
		p.Selection = domain.TimeSelection{
			Start: parseNullableTime(startStr),
			End:   parseNullableTime(endStr),
		}
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing preset created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing preset updated_at: %w", err)
	}
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return p, nil
}
