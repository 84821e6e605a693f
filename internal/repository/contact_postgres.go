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

type ContactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
	}
}

const contactColumns = `id, name, email, subject, custom_subject, message, responded, response_notes, created_at`

func (r *ContactRepo) Create(ctx context.Context, dto domain.CreateContactSubmissionDTO) (int64, error) {
	query := `
		INSERT INTO contact_submissions (name, email, subject, custom_subject, message, responded, response_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, false, '', $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.Name,
		dto.Email,
		dto.Subject,
		dto.CustomSubject,
		dto.Message,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания обращения: %w", err)
	}

	return id, nil
}

func scanContact(row pgx.Row) (*domain.ContactSubmission, error) {
	var submission domain.ContactSubmission
	err := row.Scan(
		&submission.ID,
		&submission.Name,
		&submission.Email,
		&submission.Subject,
		&submission.CustomSubject,
		&submission.Message,
		&submission.Responded,
		&submission.ResponseNotes,
		&submission.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_submissions WHERE id = $1`, contactColumns)

	submission, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("обращение с id %d не найдено", id)
		}
		return nil, fmt.Errorf("ошибка получения обращения: %w", err)
	}

	return submission, nil
}

func (r *ContactRepo) SetResponded(ctx context.Context, id int64, dto domain.RespondContactDTO) error {
	query := `UPDATE contact_submissions SET responded = $1, response_notes = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, dto.Responded, dto.ResponseNotes, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления обращения: %w", err)
	}

	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM contact_submissions WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления обращения: %w", err)
	}

	return nil
}

func (r *ContactRepo) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, int, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.Responded != nil {
		conditions = append(conditions, fmt.Sprintf("responded = $%d", argID))
		args = append(args, *filter.Responded)
		argID++
	}

	if filter.Subject != nil {
		conditions = append(conditions, fmt.Sprintf("subject = $%d", argID))
		args = append(args, *filter.Subject)
		argID++
	}

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argID))
		args = append(args, *filter.StartDate)
		argID++
	}

	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argID))
		args = append(args, *filter.EndDate)
		argID++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM contact_submissions" + whereClause

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта обращений: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM contact_submissions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		contactColumns, whereClause, argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка обращений: %w", err)
	}
	defer rows.Close()

	submissions := make([]domain.ContactSubmission, 0)
	for rows.Next() {
		submission, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки обращения: %w", err)
		}
		submissions = append(submissions, *submission)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return submissions, total, nil
}
