package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/xxxsen/quizdesk/internal/model"
)

const (
	DefaultSize = 50
	DefaultTTL  = time.Hour
)

// Recorder keeps the most recent action outcomes. Entries fall out when the
// size bound is hit or they outlive the ttl.
type Recorder struct {
	cache *expirable.LRU[string, model.Outcome]
	now   func() time.Time
}

func NewRecorder(size int, ttl time.Duration) *Recorder {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Recorder{
		cache: expirable.NewLRU[string, model.Outcome](size, nil, ttl),
		now:   time.Now,
	}
}

// Add stamps the outcome with an id and time when missing and stores it.
func (r *Recorder) Add(outcome model.Outcome) model.Outcome {
	if r == nil {
		return outcome
	}
	if outcome.ID == "" {
		outcome.ID = uuid.NewString()
	}
	if outcome.Ctime == 0 {
		outcome.Ctime = r.now().Unix()
	}
	r.cache.Add(outcome.ID, outcome)
	return outcome
}

// Recent lists stored outcomes newest first.
func (r *Recorder) Recent() []model.Outcome {
	if r == nil {
		return []model.Outcome{}
	}
	values := r.cache.Values()
	out := make([]model.Outcome, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out = append(out, values[i])
	}
	return out
}

func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return r.cache.Len()
}
