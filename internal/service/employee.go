package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/repository"
	"pourhouse/pkg/validator"
)

type EmployeeServiceImpl struct {
	repo     repository.EmployeeRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, userRepo repository.UserRepository, logger *zap.Logger) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, dto domain.CreateEmployeeDTO) (int64, error) {
	if _, err := s.userRepo.GetByID(ctx, dto.UserID); err != nil {
		return 0, err
	}

	if existing, err := s.repo.GetByUserID(ctx, dto.UserID); err == nil && existing != nil {
		return 0, errors.New("у пользователя уже есть профиль сотрудника")
	}

	hireDate, err := time.Parse("2006-01-02", dto.HireDate)
	if err != nil {
		return 0, errors.New("неверный формат даты найма, ожидается YYYY-MM-DD")
	}

	dto.Phone = validator.FormatPhone(dto.Phone)
	if !validator.ValidatePhone(dto.Phone) {
		return 0, errors.New("некорректный номер телефона")
	}
	if dto.EmergencyContactPhone != "" {
		dto.EmergencyContactPhone = validator.FormatPhone(dto.EmergencyContactPhone)
	}

	code, err := s.nextEmployeeCode(ctx, hireDate.Year())
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, code, dto, hireDate)
	if err != nil {
		s.logger.Error("ошибка при создании сотрудника", zap.Error(err))
		return 0, errors.New("ошибка при создании сотрудника")
	}

	return id, nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateEmployeeDTO) error {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Phone != nil {
		formatted := validator.FormatPhone(*dto.Phone)
		if !validator.ValidatePhone(formatted) {
			return errors.New("некорректный номер телефона")
		}
		dto.Phone = &formatted
	}

	if dto.TerminationDate != nil {
		terminationDate, err := time.Parse("2006-01-02", *dto.TerminationDate)
		if err != nil {
			return errors.New("неверный формат даты увольнения, ожидается YYYY-MM-DD")
		}
		if terminationDate.Before(employee.HireDate) {
			return errors.New("дата увольнения раньше даты найма")
		}
		// Дата увольнения без статуса не имеет смысла.
		if dto.Status == nil {
			terminated := domain.EmploymentTerminated
			dto.Status = &terminated
		}
	}

	if dto.Status != nil && *dto.Status == domain.EmploymentTerminated && dto.TerminationDate == nil && employee.TerminationDate == nil {
		return errors.New("для уволенного сотрудника требуется дата увольнения")
	}

	return s.repo.Update(ctx, id, dto)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// nextEmployeeCode выдаёт табельный номер вида EMP2026003: префикс,
// год найма и порядковый номер внутри года.
func (s *EmployeeServiceImpl) nextEmployeeCode(ctx context.Context, year int) (string, error) {
	prefix := fmt.Sprintf("EMP%d", year)

	count, err := s.repo.CountByCodePrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}
