package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Trail is a hiking path belonging to exactly one national park.
type Trail struct {
	ID             int64
	Name           string
	Distance       float64
	Difficulty     Difficulty
	NationalParkID int64
	CreatedAt      time.Time

	// NationalPark is populated by reads that join the owning park. It is
	// ignored on writes.
	NationalPark *NationalPark
}

// NewTrail builds a trail ready to be stored. The ID is left zero for the
// repository to assign.
func NewTrail(name string, distance float64, difficulty Difficulty, parkID int64) (*Trail, error) {
	trail := &Trail{
		Name:           strings.TrimSpace(name),
		Distance:       distance,
		Difficulty:     difficulty,
		NationalParkID: parkID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := trail.Validate(); err != nil {
		return nil, err
	}

	return trail, nil
}

// Validate checks the trail's fields and returns a *ValidationError listing every
// invalid one, or nil. It does not check that the park exists; that needs a
// repository.
func (t *Trail) Validate() error {
	var errs validationErrors

	if t.ID < 0 {
		errs.add("id", "must not be negative")
	}

	switch {
	case strings.TrimSpace(t.Name) == "":
		errs.add("name", "is required")
	case utf8.RuneCountInString(t.Name) > MaxNameLength:
		errs.add("name", "is too long")
	}

	switch {
	case math.IsNaN(t.Distance) || math.IsInf(t.Distance, 0):
		errs.add("distance", "must be a finite number")
	case t.Distance < 0:
		errs.add("distance", "must not be negative")
	}

	if !t.Difficulty.Valid() {
		errs.add("difficulty", "must be one of Easy, Moderate, Difficult")
	}

	if t.NationalParkID <= 0 {
		errs.add("parkId", "is required")
	}

	return errs.err()
}
