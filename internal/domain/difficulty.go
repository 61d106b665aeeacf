package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the effort level of a trail.
type Difficulty string

// Known difficulty levels. The order matches the ordinals older clients send.
const (
	DifficultyEasy      Difficulty = "Easy"
	DifficultyModerate  Difficulty = "Moderate"
	DifficultyDifficult Difficulty = "Difficult"
)

var difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyDifficult}

// Difficulties returns all known levels in ordinal order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty resolves a level by name (case-insensitive) or by ordinal ("0".."2").
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(difficulties) {
		return difficulties[n], nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	for _, known := range difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// UnmarshalJSON accepts either the level name or its ordinal.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	parsed, err := ParseDifficulty(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
