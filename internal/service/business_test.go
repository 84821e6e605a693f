package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/pkg/hours"
)

type fakeBusinessRepo struct {
	info             *domain.BusinessInfo
	updateHoursCalls int
	savedWeekly      hours.WeeklyHours
	savedSpecial     hours.Overrides
	heroImageURL     string
}

func (r *fakeBusinessRepo) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	return r.info, nil
}

func (r *fakeBusinessRepo) Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error {
	return nil
}

func (r *fakeBusinessRepo) UpdateHours(ctx context.Context, weekly hours.WeeklyHours, special hours.Overrides) error {
	r.updateHoursCalls++
	r.savedWeekly = weekly
	r.savedSpecial = special
	return nil
}

func (r *fakeBusinessRepo) UpdateHeroImage(ctx context.Context, imageURL string) error {
	r.heroImageURL = imageURL
	return nil
}

func mustTOD(t *testing.T, s string) hours.TimeOfDay {
	t.Helper()
	parsed, err := hours.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func openDay(t *testing.T, openAt, closeAt string) hours.DayRule {
	t.Helper()
	return hours.DayRule{Open: mustTOD(t, openAt), Close: mustTOD(t, closeAt)}
}

func TestBusinessServiceUpdateHoursRejectsInvalid(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := NewBusinessService(repo, nil, zap.NewNop())

	cases := []struct {
		name string
		dto  domain.UpdateHoursDTO
	}{
		{
			"open after close",
			domain.UpdateHoursDTO{Hours: hours.WeeklyHours{
				time.Monday: openDay(t, "19:00", "07:00"),
			}},
		},
		{
			"open equals close",
			domain.UpdateHoursDTO{Hours: hours.WeeklyHours{
				time.Monday: openDay(t, "09:00", "09:00"),
			}},
		},
		{
			"bad override date",
			domain.UpdateHoursDTO{
				Hours:        hours.WeeklyHours{time.Monday: openDay(t, "07:00", "19:00")},
				SpecialHours: hours.Overrides{"25-12-2026": {Closed: true}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.UpdateHours(context.Background(), tc.dto)
			require.Error(t, err)

			var cfgErr *hours.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}

	assert.Zero(t, repo.updateHoursCalls, "невалидная конфигурация не должна доходить до хранилища")
}

func TestBusinessServiceUpdateHoursStoresValid(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := NewBusinessService(repo, nil, zap.NewNop())

	dto := domain.UpdateHoursDTO{
		Hours: hours.WeeklyHours{
			time.Monday: openDay(t, "07:00", "19:00"),
			time.Sunday: {Closed: true},
		},
		SpecialHours: hours.Overrides{
			"2026-12-25": {Closed: true, Note: "Christmas"},
		},
	}

	require.NoError(t, svc.UpdateHours(context.Background(), dto))
	assert.Equal(t, 1, repo.updateHoursCalls)
	assert.Equal(t, dto.Hours, repo.savedWeekly)
	assert.Equal(t, dto.SpecialHours, repo.savedSpecial)
}

func TestBusinessServiceUpdateRejectsUnknownTimezone(t *testing.T) {
	svc := NewBusinessService(&fakeBusinessRepo{}, nil, zap.NewNop())

	tz := "Mars/Olympus_Mons"
	err := svc.Update(context.Background(), domain.UpdateBusinessInfoDTO{Timezone: &tz})
	require.Error(t, err)
}

func TestBusinessServiceStatusClosedWeek(t *testing.T) {
	weekly := hours.WeeklyHours{}
	for _, day := range hours.WeekOrder {
		weekly[day] = hours.DayRule{Closed: true}
	}

	repo := &fakeBusinessRepo{info: &domain.BusinessInfo{
		Timezone: "UTC",
		Hours:    weekly,
	}}
	svc := NewBusinessService(repo, nil, zap.NewNop())

	eval, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, eval.IsOpen)
	assert.Equal(t, hours.LabelClosed, eval.Label)
	assert.False(t, eval.Special)
}

func TestBusinessServiceWeekSchedule(t *testing.T) {
	weekly := hours.WeeklyHours{
		time.Monday: openDay(t, "07:00", "19:00"),
	}

	today := time.Now().UTC()
	soon := today.AddDate(0, 0, 5).Format(hours.DateLayout)
	past := today.AddDate(0, 0, -2).Format(hours.DateLayout)
	far := today.AddDate(0, 0, 45).Format(hours.DateLayout)

	repo := &fakeBusinessRepo{info: &domain.BusinessInfo{
		Timezone: "UTC",
		Hours:    weekly,
		SpecialHours: hours.Overrides{
			soon: {Closed: true, Note: "Inventory day"},
			past: {Closed: true},
			far:  {Closed: true},
		},
	}}
	svc := NewBusinessService(repo, nil, zap.NewNop())

	schedule, err := svc.WeekSchedule(context.Background())
	require.NoError(t, err)

	require.Len(t, schedule.Days, 7)
	assert.Equal(t, "Monday", schedule.Days[0].Weekday)
	assert.Equal(t, "7:00 AM - 7:00 PM", schedule.Days[0].Display)
	assert.Equal(t, "Closed", schedule.Days[1].Display)

	// Прошедшие и слишком далёкие исключения не попадают в анонс
	require.Len(t, schedule.Upcoming, 1)
	assert.Equal(t, soon, schedule.Upcoming[0].Date)
	assert.Equal(t, "Closed", schedule.Upcoming[0].Display)
	assert.Equal(t, "Inventory day", schedule.Upcoming[0].Note)
}
