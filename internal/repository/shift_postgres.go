package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pourhouse/internal/domain"
)

type ShiftRepo struct {
	db *pgxpool.Pool
}

func NewShiftRepository(db *pgxpool.Pool) *ShiftRepo {
	return &ShiftRepo{
		db: db,
	}
}

const shiftColumns = `id, employee_id, date, start_time, end_time, type, status, notes, created_at, updated_at`

func (r *ShiftRepo) Create(ctx context.Context, shift domain.Shift) (int64, error) {
	query := `
		INSERT INTO shifts (employee_id, date, start_time, end_time, type, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.Type,
		shift.Status,
		shift.Notes,
		shift.CreatedAt,
		shift.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания смены: %w", err)
	}

	return id, nil
}

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var shift domain.Shift
	err := row.Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.Date,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Type,
		&shift.Status,
		&shift.Notes,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *ShiftRepo) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE id = $1`, shiftColumns)

	shift, err := scanShift(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("смена с id %d не найдена", id)
		}
		return nil, fmt.Errorf("ошибка получения смены: %w", err)
	}

	return shift, nil
}

func (r *ShiftRepo) Update(ctx context.Context, shift domain.Shift) error {
	query := `
		UPDATE shifts
		SET date = $1, start_time = $2, end_time = $3, type = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $8
	`

	_, err := r.db.Exec(ctx, query,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.Type,
		shift.Status,
		shift.Notes,
		shift.UpdatedAt,
		shift.ID,
	)

	if err != nil {
		return fmt.Errorf("ошибка обновления смены: %w", err)
	}

	return nil
}

func (r *ShiftRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shifts WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления смены: %w", err)
	}

	return nil
}

func (r *ShiftRepo) List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, int, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argID))
		args = append(args, *filter.EmployeeID)
		argID++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argID))
		args = append(args, *filter.StartDate)
		argID++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argID))
		args = append(args, *filter.EndDate)
		argID++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM shifts" + whereClause

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта смен: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM shifts%s ORDER BY date, start_time LIMIT $%d OFFSET $%d`,
		shiftColumns, whereClause, argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка смен: %w", err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки смены: %w", err)
		}
		shifts = append(shifts, *shift)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return shifts, total, nil
}

func (r *ShiftRepo) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]domain.Shift, error) {
	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE employee_id = $1 AND date = $2 ORDER BY start_time`, shiftColumns)

	rows, err := r.db.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения смен за дату: %w", err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки смены: %w", err)
		}
		shifts = append(shifts, *shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return shifts, nil
}
