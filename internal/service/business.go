package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/repository"
	"pourhouse/internal/storage"
	"pourhouse/pkg/hours"
)

// За сколько дней вперёд показывать исключения из расписания на
// публичной странице.
const upcomingWindowDays = 30

type BusinessServiceImpl struct {
	repo        repository.BusinessRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewBusinessService(repo repository.BusinessRepository, fileStorage storage.FileStorage, logger *zap.Logger) *BusinessServiceImpl {
	return &BusinessServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *BusinessServiceImpl) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	return s.repo.Get(ctx)
}

func (s *BusinessServiceImpl) Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error {
	if dto.Timezone != nil {
		if _, err := time.LoadLocation(*dto.Timezone); err != nil {
			return errors.New("неизвестный часовой пояс")
		}
	}

	return s.repo.Update(ctx, dto)
}

func (s *BusinessServiceImpl) UpdateHours(ctx context.Context, dto domain.UpdateHoursDTO) error {
	if err := hours.Validate(dto.Hours, dto.SpecialHours); err != nil {
		return err
	}

	return s.repo.UpdateHours(ctx, dto.Hours, dto.SpecialHours)
}

func (s *BusinessServiceImpl) Status(ctx context.Context) (*hours.Evaluation, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now, err := s.localNow(info.Timezone)
	if err != nil {
		return nil, err
	}

	eval := hours.Evaluate(info.Hours, info.SpecialHours, now)
	return &eval, nil
}

func (s *BusinessServiceImpl) WeekSchedule(ctx context.Context) (*domain.WeekSchedule, error) {
	info, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	schedule := &domain.WeekSchedule{
		Days: make([]domain.DaySchedule, 0, 7),
	}

	for day, display := range hours.FormatWeek(info.Hours) {
		schedule.Days = append(schedule.Days, domain.DaySchedule{
			Weekday: day.String(),
			Display: display,
		})
	}

	now, err := s.localNow(info.Timezone)
	if err != nil {
		return nil, err
	}

	schedule.Upcoming = upcomingNotes(info.SpecialHours, now)

	return schedule, nil
}

func (s *BusinessServiceImpl) UploadHeroImage(ctx context.Context, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("файловое хранилище не настроено")
	}

	info, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}

	imageURL, err := s.fileStorage.UploadFile(ctx, data, storage.PrefixHero, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки изображения", zap.Error(err))
		return "", errors.New("ошибка загрузки изображения")
	}

	if err := s.repo.UpdateHeroImage(ctx, imageURL); err != nil {
		return "", err
	}

	if info.HeroImageURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, info.HeroImageURL); err != nil {
			s.logger.Warn("ошибка удаления старого изображения", zap.Error(err))
		}
	}

	return imageURL, nil
}

func (s *BusinessServiceImpl) localNow(timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		s.logger.Error("неизвестный часовой пояс в настройках", zap.String("timezone", timezone), zap.Error(err))
		return time.Time{}, errors.New("неизвестный часовой пояс в настройках")
	}
	return time.Now().In(loc), nil
}

// upcomingNotes собирает ближайшие исключения из расписания, от сегодняшней
// даты включительно, в хронологическом порядке.
func upcomingNotes(overrides hours.Overrides, now time.Time) []domain.UpcomingNote {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	notes := make([]domain.UpcomingNote, 0)
	for dateKey, ov := range overrides {
		date, err := time.ParseInLocation(hours.DateLayout, dateKey, now.Location())
		if err != nil {
			continue
		}
		if date.Before(today) || date.After(horizon) {
			continue
		}

		rule := hours.DayRule{Closed: ov.Closed, Open: ov.Open, Close: ov.Close}
		notes = append(notes, domain.UpcomingNote{
			Date:    dateKey,
			Display: hours.FormatDayRule(rule),
			Note:    ov.Note,
		})
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Date < notes[j].Date
	})

	return notes
}
