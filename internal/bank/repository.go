package bank

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"quisqueya-quiz/internal/domain"
)

// Loader fetches a question bank from a backing source (directory, file).
type Loader interface {
	LoadBank(ctx context.Context, source string) ([]domain.Question, Report, error)
}

// Repository caches loaded banks with TTL so repeated plays in one process
// don't re-read and re-validate the files.
type Repository struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedBank
}

type cachedBank struct {
	questions []domain.Question
	report    Report
	expiresAt time.Time
}

func NewRepository(loader Loader, ttl time.Duration) *Repository {
	return &Repository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedBank),
	}
}

func (r *Repository) GetBank(ctx context.Context, source string) ([]domain.Question, Report, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[source]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.questions, entry.report, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(source, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[source]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry, nil
		}
		r.mu.RUnlock()

		questions, report, err := r.loader.LoadBank(ctx, source)
		if err != nil {
			return cachedBank{}, err
		}

		entry := cachedBank{
			questions: questions,
			report:    report,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Lock()
		r.cache[source] = entry
		r.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, Report{}, err
	}
	entry := result.(cachedBank)
	return entry.questions, entry.report, nil
}

func (r *Repository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// DirLoader loads banks from directories of JSON files (the default source).
type DirLoader struct{}

func (DirLoader) LoadBank(_ context.Context, source string) ([]domain.Question, Report, error) {
	return LoadDir(source)
}

// StaticLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticLoader struct {
	banks map[string][]domain.Question
}

func NewStaticLoader(banks map[string][]domain.Question) *StaticLoader {
	return &StaticLoader{banks: banks}
}

func (l *StaticLoader) LoadBank(_ context.Context, source string) ([]domain.Question, Report, error) {
	if questions, ok := l.banks[source]; ok {
		return questions, Report{Loaded: len(questions)}, nil
	}
	return nil, Report{}, domain.ErrEmptyBank
}
