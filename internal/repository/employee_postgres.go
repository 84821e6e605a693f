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

type EmployeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{
		db: db,
	}
}

const employeeColumns = `id, user_id, employee_code, phone, emergency_contact_name, emergency_contact_phone,
	position, status, hire_date, termination_date, hourly_wage_cents, can_open, can_close,
	can_handle_cash, notes, created_at, updated_at`

func (r *EmployeeRepo) Create(ctx context.Context, code string, dto domain.CreateEmployeeDTO, hireDate time.Time) (int64, error) {
	query := `
		INSERT INTO employees (user_id, employee_code, phone, emergency_contact_name, emergency_contact_phone,
			position, status, hire_date, hourly_wage_cents, can_open, can_close, can_handle_cash, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id
	`

	canHandleCash := true
	if dto.CanHandleCash != nil {
		canHandleCash = *dto.CanHandleCash
	}

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.UserID,
		code,
		dto.Phone,
		dto.EmergencyContactName,
		dto.EmergencyContactPhone,
		dto.Position,
		domain.EmploymentActive,
		hireDate,
		dto.HourlyWageCents,
		dto.CanOpen,
		dto.CanClose,
		canHandleCash,
		dto.Notes,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	return id, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	err := row.Scan(
		&employee.ID,
		&employee.UserID,
		&employee.EmployeeCode,
		&employee.Phone,
		&employee.EmergencyContactName,
		&employee.EmergencyContactPhone,
		&employee.Position,
		&employee.Status,
		&employee.HireDate,
		&employee.TerminationDate,
		&employee.HourlyWageCents,
		&employee.CanOpen,
		&employee.CanClose,
		&employee.CanHandleCash,
		&employee.Notes,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("сотрудник с id %d не найден", id)
		}
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}

	return employee, nil
}

func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE user_id = $1`, employeeColumns)

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("профиль сотрудника не найден")
		}
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}

	return employee, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, id int64, dto domain.UpdateEmployeeDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	appendField := func(column string, value interface{}) {
		setValues = append(setValues, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if dto.Phone != nil {
		appendField("phone", *dto.Phone)
	}
	if dto.EmergencyContactName != nil {
		appendField("emergency_contact_name", *dto.EmergencyContactName)
	}
	if dto.EmergencyContactPhone != nil {
		appendField("emergency_contact_phone", *dto.EmergencyContactPhone)
	}
	if dto.Position != nil {
		appendField("position", *dto.Position)
	}
	if dto.Status != nil {
		appendField("status", *dto.Status)
	}
	if dto.TerminationDate != nil {
		terminationDate, err := time.Parse("2006-01-02", *dto.TerminationDate)
		if err != nil {
			return errors.New("неверный формат даты увольнения")
		}
		appendField("termination_date", terminationDate)
	}
	if dto.HourlyWageCents != nil {
		appendField("hourly_wage_cents", *dto.HourlyWageCents)
	}
	if dto.CanOpen != nil {
		appendField("can_open", *dto.CanOpen)
	}
	if dto.CanClose != nil {
		appendField("can_close", *dto.CanClose)
	}
	if dto.CanHandleCash != nil {
		appendField("can_handle_cash", *dto.CanHandleCash)
	}
	if dto.Notes != nil {
		appendField("notes", *dto.Notes)
	}

	appendField("updated_at", time.Now())

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления сотрудника: %w", err)
	}

	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления сотрудника: %w", err)
	}

	return nil
}

func (r *EmployeeRepo) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.Position != nil {
		conditions = append(conditions, fmt.Sprintf("position = $%d", argID))
		args = append(args, *filter.Position)
		argID++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM employees" + whereClause

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта сотрудников: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM employees%s ORDER BY employee_code LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка сотрудников: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки сотрудника: %w", err)
		}
		employees = append(employees, *employee)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return employees, total, nil
}

func (r *EmployeeRepo) CountByCodePrefix(ctx context.Context, prefix string) (int, error) {
	query := `SELECT COUNT(*) FROM employees WHERE employee_code LIKE $1`

	var count int
	if err := r.db.QueryRow(ctx, query, prefix+"%").Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта табельных номеров: %w", err)
	}

	return count, nil
}
