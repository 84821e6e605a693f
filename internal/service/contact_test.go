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

type fakeContactRepo struct {
	created []domain.CreateContactSubmissionDTO
	nextID  int64
}

func (r *fakeContactRepo) Create(ctx context.Context, dto domain.CreateContactSubmissionDTO) (int64, error) {
	r.created = append(r.created, dto)
	r.nextID++
	return r.nextID, nil
}

func (r *fakeContactRepo) GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	return nil, errors.New("обращение не найдено")
}

func (r *fakeContactRepo) SetResponded(ctx context.Context, id int64, dto domain.RespondContactDTO) error {
	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeContactRepo) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, int, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	events []domain.ContactSubmission
}

func (n *fakeNotifier) NotifyContactCreated(submission domain.ContactSubmission) {
	n.events = append(n.events, submission)
}

func TestContactServiceSubmitClearsCustomSubject(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, &fakeBusinessRepo{}, nil, notifier, zap.NewNop())

	id, err := svc.Submit(context.Background(), domain.CreateContactSubmissionDTO{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Subject:       domain.SubjectGeneral,
		CustomSubject: "should be dropped",
		Message:       "Do you have oat milk?",
	}, "203.0.113.1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].CustomSubject)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "Jane Doe", notifier.events[0].Name)
}

func TestContactServiceSubmitKeepsCustomSubjectForOther(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeBusinessRepo{}, nil, nil, zap.NewNop())

	_, err := svc.Submit(context.Background(), domain.CreateContactSubmissionDTO{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Subject:       domain.SubjectOther,
		CustomSubject: "Lost scarf",
		Message:       "I think I left my scarf at the window table.",
	}, "203.0.113.1")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Lost scarf", repo.created[0].CustomSubject)
}

func TestContactServiceSubmitSanitizesInput(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeBusinessRepo{}, nil, nil, zap.NewNop())

	_, err := svc.Submit(context.Background(), domain.CreateContactSubmissionDTO{
		Name:    "Jane <script>",
		Email:   "jane@example.com",
		Subject: domain.SubjectGeneral,
		Message: "hello",
	}, "203.0.113.1")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Jane script", repo.created[0].Name)
}

func TestContactServiceSubmitRateLimited(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, &fakeBusinessRepo{}, nil, nil, zap.NewNop())

	dto := domain.CreateContactSubmissionDTO{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: domain.SubjectGeneral,
		Message: "hello",
	}

	for i := 0; i < contactRateLimit; i++ {
		_, err := svc.Submit(context.Background(), dto, "203.0.113.1")
		require.NoError(t, err)
	}

	_, err := svc.Submit(context.Background(), dto, "203.0.113.1")
	require.ErrorIs(t, err, ErrRateLimited)

	// Лимит привязан к email, смена IP не помогает
	_, err = svc.Submit(context.Background(), dto, "203.0.113.2")
	require.ErrorIs(t, err, ErrRateLimited)

	other := dto
	other.Email = "john@example.com"
	_, err = svc.Submit(context.Background(), other, "203.0.113.1")
	require.NoError(t, err)
}

func TestRateLimiterSlidingWindow(t *testing.T) {
	limiter := newRateLimiter(3, time.Hour)
	base := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.Allow("ip", base))
	assert.True(t, limiter.Allow("ip", base.Add(10*time.Minute)))
	assert.True(t, limiter.Allow("ip", base.Add(20*time.Minute)))
	assert.False(t, limiter.Allow("ip", base.Add(30*time.Minute)))

	// Первая запись выпала из окна, слот освободился
	assert.True(t, limiter.Allow("ip", base.Add(time.Hour+time.Minute)))
	assert.False(t, limiter.Allow("ip", base.Add(time.Hour+2*time.Minute)))
}

func TestRateLimiterSweepsStaleKeys(t *testing.T) {
	limiter := newRateLimiter(3, time.Hour)
	base := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.Allow("old@example.com", base))
	assert.True(t, limiter.Allow("fresh@example.com", base.Add(2*time.Hour)))

	limiter.mu.Lock()
	_, staleKept := limiter.entries["old@example.com"]
	size := len(limiter.entries)
	limiter.mu.Unlock()

	assert.False(t, staleKept)
	assert.Equal(t, 1, size)
}
