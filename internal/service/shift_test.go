package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

type fakeShiftRepo struct {
	shifts  map[int64]*domain.Shift
	nextID  int64
	created []domain.Shift
	updated *domain.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[int64]*domain.Shift), nextID: 1}
}

func (r *fakeShiftRepo) add(shift domain.Shift) {
	shift.ID = r.nextID
	r.nextID++
	r.shifts[shift.ID] = &shift
}

func (r *fakeShiftRepo) Create(ctx context.Context, shift domain.Shift) (int64, error) {
	r.created = append(r.created, shift)
	r.add(shift)
	return r.nextID - 1, nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	shift, ok := r.shifts[id]
	if !ok {
		return nil, errors.New("смена не найдена")
	}
	copied := *shift
	return &copied, nil
}

func (r *fakeShiftRepo) Update(ctx context.Context, shift domain.Shift) error {
	r.updated = &shift
	r.shifts[shift.ID] = &shift
	return nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id int64) error {
	delete(r.shifts, id)
	return nil
}

func (r *fakeShiftRepo) List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, int, error) {
	return nil, 0, nil
}

func (r *fakeShiftRepo) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]domain.Shift, error) {
	var result []domain.Shift
	for _, shift := range r.shifts {
		if shift.EmployeeID == employeeID && shift.Date.Equal(date) {
			result = append(result, *shift)
		}
	}
	return result, nil
}

func activeEmployeeRepo() *fakeEmployeeRepo {
	repo := newFakeEmployeeRepo()
	repo.employees[1] = &domain.Employee{ID: 1, Status: domain.EmploymentActive}
	return repo
}

func TestShiftServiceCreateRejectsOverlap(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	repo := newFakeShiftRepo()
	repo.add(domain.Shift{
		EmployeeID: 1,
		Date:       date,
		StartTime:  "08:00",
		EndTime:    "12:00",
		Status:     domain.ShiftScheduled,
	})

	svc := NewShiftService(repo, activeEmployeeRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "11:00",
		EndTime:    "15:00",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestShiftServiceCreateAllowsAdjacent(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	repo := newFakeShiftRepo()
	repo.add(domain.Shift{
		EmployeeID: 1,
		Date:       date,
		StartTime:  "08:00",
		EndTime:    "12:00",
		Status:     domain.ShiftScheduled,
	})

	svc := NewShiftService(repo, activeEmployeeRepo(), zap.NewNop())

	// Конец одной смены совпадает с началом другой: это не пересечение
	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "12:00",
		EndTime:    "16:00",
	})
	require.NoError(t, err)
}

func TestShiftServiceCreateIgnoresCancelled(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	repo := newFakeShiftRepo()
	repo.add(domain.Shift{
		EmployeeID: 1,
		Date:       date,
		StartTime:  "08:00",
		EndTime:    "12:00",
		Status:     domain.ShiftCancelled,
	})

	svc := NewShiftService(repo, activeEmployeeRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "10:00",
		EndTime:    "14:00",
	})
	require.NoError(t, err)
}

func TestShiftServiceCreateRejectsTerminated(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.employees[1] = &domain.Employee{ID: 1, Status: domain.EmploymentTerminated}

	svc := NewShiftService(newFakeShiftRepo(), employees, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "08:00",
		EndTime:    "12:00",
	})
	require.Error(t, err)
}

func TestShiftServiceCreateDefaults(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo, activeEmployeeRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "8:00",
		EndTime:    "12:30",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	shift := repo.created[0]
	assert.Equal(t, domain.ShiftMid, shift.Type)
	assert.Equal(t, domain.ShiftScheduled, shift.Status)
	assert.Equal(t, "08:00", shift.StartTime)
	assert.Equal(t, "12:30", shift.EndTime)
}

func TestShiftServiceCreateRejectsInvertedWindow(t *testing.T) {
	svc := NewShiftService(newFakeShiftRepo(), activeEmployeeRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateShiftDTO{
		EmployeeID: 1,
		Date:       "2026-09-07",
		StartTime:  "15:00",
		EndTime:    "09:00",
	})
	require.Error(t, err)
}

func TestShiftServiceUpdateExcludesOwnShift(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	repo := newFakeShiftRepo()
	repo.add(domain.Shift{
		EmployeeID: 1,
		Date:       date,
		StartTime:  "08:00",
		EndTime:    "12:00",
		Status:     domain.ShiftScheduled,
	})

	svc := NewShiftService(repo, activeEmployeeRepo(), zap.NewNop())

	// Смещение собственного окна не должно конфликтовать с самим собой
	newEnd := "13:00"
	err := svc.Update(context.Background(), 1, domain.UpdateShiftDTO{EndTime: &newEnd})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "13:00", repo.updated.EndTime)
}
