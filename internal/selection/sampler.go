package selection

import (
	"fmt"
	"math/rand"
	"time"

	"prepquiz-service/internal/models"
)

// fillerOptions is the fixed option set used for synthesized questions
// when the bank cannot cover the requested count.
var fillerOptions = []string{"Option A", "Option B", "Option C", "Option D"}

// Sampler performs uniform random selection of questions without
// replacement. Each sampler owns its rand source so selection stays
// non-deterministic across calls with identical inputs; that variety is
// intentional for repeat practice.
type Sampler struct {
	rand *rand.Rand
}

func NewSampler() *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededSampler fixes the source, for reproducible selection.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// FillPool pads the pool with synthesized questions until it holds at
// least count entries. Fillers name the module, subject and a running
// ordinal so they cannot be mistaken for bank content.
func FillPool(pool []models.Question, subject, module string, count int) []models.Question {
	for len(pool) < count {
		pool = append(pool, models.Question{
			Question: fmt.Sprintf("Sample question %d for %s in %s", len(pool)+1, module, subject),
			Options:  fillerOptions,
			Answer:   "Option A",
		})
	}
	return pool
}

// Sample draws min(count, len(pool)) questions uniformly at random
// without replacement. The input slice is not modified.
func (s *Sampler) Sample(pool []models.Question, count int) []models.Question {
	if count > len(pool) {
		count = len(pool)
	}
	if count < 0 {
		count = 0
	}
	selected := make([]models.Question, 0, count)
	for _, idx := range s.rand.Perm(len(pool))[:count] {
		selected = append(selected, pool[idx])
	}
	return selected
}
