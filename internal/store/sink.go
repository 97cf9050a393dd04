package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

// Repository is the slice of the Mongo layer the sink needs.
type Repository interface {
	Upsert(ctx context.Context, c models.CompanyRecord) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context, limit, skip int64) ([]models.CompanyRecord, error)
}

// Publisher forwards snapshot payloads to the fan-out queue. Optional: nil means
// in-process subscribers only.
type Publisher interface {
	Publish(ctx context.Context, body []byte, headers amqp.Table) error
}

// Sink is the persistent store as the pipeline sees it: upsert one record at a
// time, and every successful mutation pushes the complete, authoritative record
// set to all subscribers. Consumers never read Mongo directly; they hold the last
// pushed snapshot. A failed reload keeps subscribers on their last good snapshot
// and reports through onError.
type Sink struct {
	repo Repository
	pub  Publisher
	log  *slog.Logger

	mu     sync.RWMutex
	latest []models.CompanyRecord
	subs   map[int]subscriber
	nextID int
}

type subscriber struct {
	onSnapshot func([]models.CompanyRecord)
	onError    func(error)
}

func NewSink(repo Repository, pub Publisher, log *slog.Logger) *Sink {
	if log == nil {
		log = slog.Default()
	}
	return &Sink{
		repo: repo,
		pub:  pub,
		log:  log.With("cmp", "store.sink"),
		subs: make(map[int]subscriber),
	}
}

// Prime loads the initial snapshot, typically once at startup.
func (s *Sink) Prime(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Sink) Upsert(ctx context.Context, rec models.CompanyRecord) error {
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return err
	}
	return s.refresh(ctx)
}

func (s *Sink) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// Subscribe registers callbacks and immediately delivers the current snapshot if
// one exists. The returned function unsubscribes.
func (s *Sink) Subscribe(onSnapshot func([]models.CompanyRecord), onError func(error)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = subscriber{onSnapshot: onSnapshot, onError: onError}
	latest := s.latest
	s.mu.Unlock()

	if latest != nil && onSnapshot != nil {
		onSnapshot(latest)
	}
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Latest returns the last pushed snapshot.
func (s *Sink) Latest() []models.CompanyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Sink) refresh(ctx context.Context) error {
	records, err := s.repo.GetAll(ctx, 0, 0)
	if err != nil {
		s.log.Error("snapshot_reload_error", "err", err)
		s.notifyError(err)
		return err
	}

	s.mu.Lock()
	s.latest = records
	subs := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		if sub.onSnapshot != nil {
			sub.onSnapshot(records)
		}
	}
	s.publish(ctx, records)
	return nil
}

func (s *Sink) notifyError(err error) {
	s.mu.RLock()
	subs := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()
	for _, sub := range subs {
		if sub.onError != nil {
			sub.onError(err)
		}
	}
}

func (s *Sink) publish(ctx context.Context, records []models.CompanyRecord) {
	if s.pub == nil {
		return
	}
	body, err := json.Marshal(records)
	if err != nil {
		s.log.Error("snapshot_marshal_error", "err", err)
		return
	}
	headers := amqp.Table{
		"count":     int32(len(records)),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.pub.Publish(ctx, body, headers); err != nil {
		// fan-out is best effort; the write itself already succeeded
		s.log.Warn("snapshot_publish_error", "err", err)
	}
}
