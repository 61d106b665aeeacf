package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits shared by parks and trails.
const (
	MaxNameLength    = 100
	MaxStateLength   = 100
	MaxPictureLength = 2048
)

// NationalPark is a geographic area that owns zero or more trails.
type NationalPark struct {
	ID          int64
	Name        string
	State       string
	Picture     string
	Established *time.Time
	CreatedAt   time.Time
}

// NewNationalPark builds a park ready to be stored. The ID is left zero for the
// repository to assign.
func NewNationalPark(name, state, picture string, established *time.Time) (*NationalPark, error) {
	park := &NationalPark{
		Name:        strings.TrimSpace(name),
		State:       strings.TrimSpace(state),
		Picture:     strings.TrimSpace(picture),
		Established: established,
		CreatedAt:   time.Now().UTC(),
	}

	if err := park.Validate(); err != nil {
		return nil, err
	}

	return park, nil
}

// Validate checks the park's fields and returns a *ValidationError listing every
// invalid one, or nil.
func (p *NationalPark) Validate() error {
	var errs validationErrors

	if p.ID < 0 {
		errs.add("id", "must not be negative")
	}

	switch {
	case strings.TrimSpace(p.Name) == "":
		errs.add("name", "is required")
	case utf8.RuneCountInString(p.Name) > MaxNameLength:
		errs.add("name", "is too long")
	}

	switch {
	case strings.TrimSpace(p.State) == "":
		errs.add("state", "is required")
	case utf8.RuneCountInString(p.State) > MaxStateLength:
		errs.add("state", "is too long")
	}

	if utf8.RuneCountInString(p.Picture) > MaxPictureLength {
		errs.add("picture", "is too long")
	}

	if p.Established != nil && p.Established.After(time.Now().UTC()) {
		errs.add("established", "must not be in the future")
	}

	return errs.err()
}
