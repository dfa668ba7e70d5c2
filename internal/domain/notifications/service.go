package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"medisafe-companion/internal/ports/storage"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidCategory = errors.New("type must be info, urgent or recommendation")
	ErrNotFound        = errors.New("notification not found")
)

type Service struct {
	repo Repository
	feed *Feed
	now  func() time.Time
}

func NewService(repo Repository, feed *Feed) *Service {
	return &Service{
		repo: repo,
		feed: feed,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title    string
	Body     string
	Category Category
}

// Create persiste una notificación. Categoría vacía = info.
func (s *Service) Create(ctx context.Context, in CreateInput) (Notification, error) {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" && body == "" {
		return Notification{}, ErrInvalidInput
	}

	cat := Category(strings.ToLower(strings.TrimSpace(string(in.Category))))
	if cat == "" {
		cat = CategoryInfo
	}
	if !cat.Valid() {
		return Notification{}, ErrInvalidCategory
	}

	n := Notification{
		Source:    SourceAI,
		Title:     title,
		Body:      body,
		Category:  cat,
		Timestamp: s.now(),
	}
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return Notification{}, err
	}
	n.ID = id

	if s.feed != nil {
		s.feed.Merge([]Notification{n})
	}
	return n, nil
}

// Latest devuelve las últimas LatestLimit persistidas, más nuevas primero.
func (s *Service) Latest(ctx context.Context) ([]Notification, error) {
	return s.repo.ListLatest(ctx, LatestLimit)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if s.feed != nil {
		s.feed.Ack(SourceAI, id)
	}
	return nil
}

// Feed trae el último lote persistido, lo fusiona con el feed local y devuelve el resultado.
func (s *Service) Feed(ctx context.Context) ([]Notification, error) {
	if s.feed == nil {
		return s.Latest(ctx)
	}
	batch, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}
	s.feed.Merge(batch)
	return s.feed.Snapshot(), nil
}

// Ack confirma una notificación del feed (urgentes del scheduler).
func (s *Service) Ack(ctx context.Context, src Source, id int64) error {
	if src == SourceAI {
		return s.MarkRead(ctx, id)
	}
	if s.feed == nil || !s.feed.Ack(src, id) {
		return ErrNotFound
	}
	return nil
}
