package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/mailer"
	"pourhouse/internal/repository"
	"pourhouse/pkg/validator"
)

const (
	contactRateLimit  = 3
	contactRateWindow = time.Hour
)

// ErrRateLimited возвращается при превышении лимита обращений с одного
// адреса. Транспортный слой отвечает на него кодом 429.
var ErrRateLimited = errors.New("слишком много обращений, попробуйте позже")

type ContactServiceImpl struct {
	repo         repository.ContactRepository
	businessRepo repository.BusinessRepository
	mail         mailer.Mailer
	notifier     Notifier
	logger       *zap.Logger

	limiter *rateLimiter
}

func NewContactService(
	repo repository.ContactRepository,
	businessRepo repository.BusinessRepository,
	mail mailer.Mailer,
	notifier Notifier,
	logger *zap.Logger,
) *ContactServiceImpl {
	return &ContactServiceImpl{
		repo:         repo,
		businessRepo: businessRepo,
		mail:         mail,
		notifier:     notifier,
		logger:       logger,
		limiter:      newRateLimiter(contactRateLimit, contactRateWindow),
	}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, dto domain.CreateContactSubmissionDTO, ip string) (int64, error) {
	if !s.limiter.Allow(strings.ToLower(dto.Email), time.Now()) {
		s.logger.Warn("превышен лимит обращений",
			zap.String("email", dto.Email), zap.String("ip", ip))
		return 0, ErrRateLimited
	}

	dto.Name = validator.SanitizeString(dto.Name)
	dto.CustomSubject = validator.SanitizeString(dto.CustomSubject)

	if dto.Subject != domain.SubjectOther {
		dto.CustomSubject = ""
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка при сохранении обращения", zap.Error(err))
		return 0, errors.New("ошибка при отправке обращения")
	}

	submission := domain.ContactSubmission{
		ID:            id,
		Name:          dto.Name,
		Email:         dto.Email,
		Subject:       dto.Subject,
		CustomSubject: dto.CustomSubject,
		Message:       dto.Message,
		CreatedAt:     time.Now(),
	}

	if s.notifier != nil {
		s.notifier.NotifyContactCreated(submission)
	}

	// Письма уходят в фоне, ошибка доставки не ломает приём обращения.
	if s.mail != nil {
		go s.sendEmails(submission)
	}

	return id, nil
}

func (s *ContactServiceImpl) sendEmails(submission domain.ContactSubmission) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := s.businessRepo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения профиля заведения для уведомления", zap.Error(err))
		return
	}

	if info.Email != "" {
		if err := s.mail.SendContactNotification(ctx, info.Email, submission); err != nil {
			s.logger.Error("ошибка отправки уведомления о новом обращении",
				zap.Int64("submission_id", submission.ID), zap.Error(err))
		}
	}

	if err := s.mail.SendContactAutoReply(ctx, submission); err != nil {
		s.logger.Error("ошибка отправки автоответа",
			zap.Int64("submission_id", submission.ID), zap.Error(err))
	}
}

func (s *ContactServiceImpl) GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactServiceImpl) Respond(ctx context.Context, id int64, dto domain.RespondContactDTO) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.SetResponded(ctx, id, dto)
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *ContactServiceImpl) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

// rateLimiter — скользящее окно по ключу (email отправителя). Записи
// старше окна отбрасываются при каждом обращении, полностью устаревшие
// ключи вычищаются не реже раза в окно, иначе карта растёт с каждым
// новым отправителем.
type rateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	entries   map[string][]time.Time
	lastSweep time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string][]time.Time),
	}
}

func (l *rateLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	kept := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.entries[key] = kept
		return false
	}

	l.entries[key] = append(kept, now)
	return true
}

func (l *rateLimiter) sweep(cutoff time.Time) {
	for key, times := range l.entries {
		kept := times[:0]
		for _, t := range times {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(l.entries, key)
			continue
		}
		l.entries[key] = kept
	}
}
