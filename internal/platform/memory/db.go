package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/parky-api/internal/domain"
)

// DB is the shared state behind the stores. Parks and trails live in one DB so
// that trail writes can check the park reference and park deletes can cascade.
type DB struct {
	mu sync.RWMutex

	parks  map[int64]domain.NationalPark
	trails map[int64]domain.Trail
	users  map[int64]domain.User

	nextParkID  int64
	nextTrailID int64
	nextUserID  int64

	now func() time.Time
}

// NewDB creates an empty database.
func NewDB() *DB {
	return &DB{
		parks:  make(map[int64]domain.NationalPark),
		trails: make(map[int64]domain.Trail),
		users:  make(map[int64]domain.User),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// sortedIDs returns the keys of m in ascending order.
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// withPark returns a copy of t carrying a copy of its park. Callers hold mu.
func (db *DB) withPark(t domain.Trail) *domain.Trail {
	if p, ok := db.parks[t.NationalParkID]; ok {
		park := p
		t.NationalPark = &park
	}
	return &t
}
