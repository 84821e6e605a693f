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

type fakeEmployeeRepo struct {
	employees   map[int64]*domain.Employee
	byUser      map[int64]*domain.Employee
	codeCount   int
	createdCode string
	updatedDTO  *domain.UpdateEmployeeDTO
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		byUser:    make(map[int64]*domain.Employee),
	}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, code string, dto domain.CreateEmployeeDTO, hireDate time.Time) (int64, error) {
	r.createdCode = code
	return 1, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, errors.New("сотрудник не найден")
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	employee, ok := r.byUser[userID]
	if !ok {
		return nil, errors.New("сотрудник не найден")
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, id int64, dto domain.UpdateEmployeeDTO) error {
	r.updatedDTO = &dto
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) CountByCodePrefix(ctx context.Context, prefix string) (int, error) {
	return r.codeCount, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user domain.CreateUserDTO) (int64, error) {
	return 1, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("пользователь не найден")
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("пользователь не найден")
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error {
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return nil, nil
}

func TestEmployeeServiceCreateGeneratesCode(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.codeCount = 2
	users := &fakeUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Email: "barista@example.com"},
	}}
	svc := NewEmployeeService(repo, users, zap.NewNop())

	id, err := svc.Create(context.Background(), domain.CreateEmployeeDTO{
		UserID:          7,
		Phone:           "+1 (831) 335-1234",
		Position:        domain.PositionBarista,
		HireDate:        "2025-03-10",
		HourlyWageCents: 1800,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "EMP2025003", repo.createdCode)
}

func TestEmployeeServiceCreateRejectsDuplicateProfile(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byUser[7] = &domain.Employee{ID: 3, UserID: 7}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		7: {ID: 7},
	}}
	svc := NewEmployeeService(repo, users, zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateEmployeeDTO{
		UserID:          7,
		Phone:           "+18313351234",
		Position:        domain.PositionBarista,
		HireDate:        "2025-03-10",
		HourlyWageCents: 1800,
	})
	require.Error(t, err)
}

func TestEmployeeServiceUpdateTermination(t *testing.T) {
	hireDate := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("date before hire rejected", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		repo.employees[1] = &domain.Employee{ID: 1, HireDate: hireDate, Status: domain.EmploymentActive}
		svc := NewEmployeeService(repo, &fakeUserRepo{}, zap.NewNop())

		early := "2024-01-15"
		err := svc.Update(context.Background(), 1, domain.UpdateEmployeeDTO{TerminationDate: &early})
		require.Error(t, err)
	})

	t.Run("date implies terminated status", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		repo.employees[1] = &domain.Employee{ID: 1, HireDate: hireDate, Status: domain.EmploymentActive}
		svc := NewEmployeeService(repo, &fakeUserRepo{}, zap.NewNop())

		date := "2025-08-01"
		err := svc.Update(context.Background(), 1, domain.UpdateEmployeeDTO{TerminationDate: &date})
		require.NoError(t, err)
		require.NotNil(t, repo.updatedDTO)
		require.NotNil(t, repo.updatedDTO.Status)
		assert.Equal(t, domain.EmploymentTerminated, *repo.updatedDTO.Status)
	})

	t.Run("terminated status requires a date", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		repo.employees[1] = &domain.Employee{ID: 1, HireDate: hireDate, Status: domain.EmploymentActive}
		svc := NewEmployeeService(repo, &fakeUserRepo{}, zap.NewNop())

		terminated := domain.EmploymentTerminated
		err := svc.Update(context.Background(), 1, domain.UpdateEmployeeDTO{Status: &terminated})
		require.Error(t, err)
	})
}
