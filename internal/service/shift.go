package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/repository"
	"pourhouse/pkg/hours"
)

type ShiftServiceImpl struct {
	repo         repository.ShiftRepository
	employeeRepo repository.EmployeeRepository
	logger       *zap.Logger
}

func NewShiftService(repo repository.ShiftRepository, employeeRepo repository.EmployeeRepository, logger *zap.Logger) *ShiftServiceImpl {
	return &ShiftServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, dto domain.CreateShiftDTO) (int64, error) {
	employee, err := s.employeeRepo.GetByID(ctx, dto.EmployeeID)
	if err != nil {
		return 0, err
	}

	if employee.Status == domain.EmploymentTerminated {
		return 0, errors.New("нельзя назначить смену уволенному сотруднику")
	}

	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return 0, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	startTime, endTime, err := parseShiftWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return 0, err
	}

	if err := s.checkOverlap(ctx, dto.EmployeeID, date, startTime, endTime, 0); err != nil {
		return 0, err
	}

	shiftType := dto.Type
	if shiftType == "" {
		shiftType = domain.ShiftMid
	}

	now := time.Now()
	shift := domain.Shift{
		EmployeeID: dto.EmployeeID,
		Date:       date,
		StartTime:  startTime.String(),
		EndTime:    endTime.String(),
		Type:       shiftType,
		Status:     domain.ShiftScheduled,
		Notes:      dto.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.repo.Create(ctx, shift)
}

func (s *ShiftServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShiftServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateShiftDTO) error {
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Date != nil {
		date, err := time.Parse("2006-01-02", *dto.Date)
		if err != nil {
			return errors.New("неверный формат даты, ожидается YYYY-MM-DD")
		}
		shift.Date = date
	}
	if dto.StartTime != nil {
		shift.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		shift.EndTime = *dto.EndTime
	}
	if dto.Type != nil {
		shift.Type = *dto.Type
	}
	if dto.Status != nil {
		shift.Status = *dto.Status
	}
	if dto.Notes != nil {
		shift.Notes = *dto.Notes
	}

	startTime, endTime, err := parseShiftWindow(shift.StartTime, shift.EndTime)
	if err != nil {
		return err
	}
	shift.StartTime = startTime.String()
	shift.EndTime = endTime.String()

	if dto.Date != nil || dto.StartTime != nil || dto.EndTime != nil {
		if err := s.checkOverlap(ctx, shift.EmployeeID, shift.Date, startTime, endTime, shift.ID); err != nil {
			return err
		}
	}

	shift.UpdatedAt = time.Now()

	return s.repo.Update(ctx, *shift)
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *ShiftServiceImpl) List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, int, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

func parseShiftWindow(start, end string) (hours.TimeOfDay, hours.TimeOfDay, error) {
	startTime, err := hours.ParseTimeOfDay(start)
	if err != nil {
		return hours.TimeOfDay{}, hours.TimeOfDay{}, errors.New("неверный формат времени начала, ожидается HH:MM")
	}

	endTime, err := hours.ParseTimeOfDay(end)
	if err != nil {
		return hours.TimeOfDay{}, hours.TimeOfDay{}, errors.New("неверный формат времени конца, ожидается HH:MM")
	}

	if !startTime.Before(endTime) {
		return hours.TimeOfDay{}, hours.TimeOfDay{}, errors.New("начало смены должно быть раньше конца")
	}

	return startTime, endTime, nil
}

// checkOverlap отклоняет смену, пересекающуюся по времени с другой сменой
// того же сотрудника в тот же день. Отменённые смены не учитываются.
func (s *ShiftServiceImpl) checkOverlap(ctx context.Context, employeeID int64, date time.Time, start, end hours.TimeOfDay, excludeID int64) error {
	existing, err := s.repo.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return err
	}

	for _, other := range existing {
		if other.ID == excludeID || other.Status == domain.ShiftCancelled {
			continue
		}

		otherStart, err := hours.ParseTimeOfDay(other.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := hours.ParseTimeOfDay(other.EndTime)
		if err != nil {
			continue
		}

		if start.Minutes() < otherEnd.Minutes() && otherStart.Minutes() < end.Minutes() {
			return errors.New("смена пересекается с другой сменой сотрудника")
		}
	}

	return nil
}
