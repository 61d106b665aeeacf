package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrail(t *testing.T) {
	trail, err := NewTrail(" Ridge Loop ", 4.2, DifficultyModerate, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), trail.ID, "ID is assigned by the repository")
	assert.Equal(t, "Ridge Loop", trail.Name)
	assert.Equal(t, 4.2, trail.Distance)
	assert.Equal(t, DifficultyModerate, trail.Difficulty)
	assert.Equal(t, int64(1), trail.NationalParkID)
	assert.False(t, trail.CreatedAt.IsZero())
}

func TestTrailValidate(t *testing.T) {
	valid := Trail{Name: "Ridge Loop", Distance: 0, Difficulty: DifficultyEasy, NationalParkID: 3}
	require.NoError(t, valid.Validate(), "zero distance is allowed")

	tests := []struct {
		name   string
		mutate func(*Trail)
		fields []string
	}{
		{"empty name", func(tr *Trail) { tr.Name = "   " }, []string{"name"}},
		{"long name", func(tr *Trail) { tr.Name = strings.Repeat("x", MaxNameLength+1) }, []string{"name"}},
		{"negative distance", func(tr *Trail) { tr.Distance = -0.1 }, []string{"distance"}},
		{"NaN distance", func(tr *Trail) { tr.Distance = math.NaN() }, []string{"distance"}},
		{"unknown difficulty", func(tr *Trail) { tr.Difficulty = "Extreme" }, []string{"difficulty"}},
		{"missing park", func(tr *Trail) { tr.NationalParkID = 0 }, []string{"parkId"}},
		{"negative id", func(tr *Trail) { tr.ID = -1 }, []string{"id"}},
		{
			"several fields",
			func(tr *Trail) {
				tr.Name = ""
				tr.Distance = -5
				tr.NationalParkID = 0
			},
			[]string{"name", "distance", "parkId"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := valid
			tc.mutate(&tr)

			err := tr.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))

			got := make([]string, 0, len(vErr.Fields))
			for _, f := range vErr.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tc.fields, got)
		})
	}
}

func TestNameLimitsCountCharacters(t *testing.T) {
	accented := strings.Repeat("é", 60)
	require.Greater(t, len(accented), MaxNameLength, "more bytes than the limit")

	trail := Trail{Name: accented, Distance: 1, Difficulty: DifficultyEasy, NationalParkID: 1}
	assert.NoError(t, trail.Validate())

	trail.Name = strings.Repeat("é", MaxNameLength+1)
	assert.Error(t, trail.Validate())

	park := NationalPark{Name: accented, State: strings.Repeat("ü", MaxStateLength)}
	assert.NoError(t, park.Validate())

	assert.NoError(t, ValidateUsername(strings.Repeat("ñ", MaxUsernameLength)))
	assert.ErrorIs(t, ValidateUsername(strings.Repeat("ñ", MaxUsernameLength+1)), ErrInvalidUsername)
}

func TestNationalParkValidate(t *testing.T) {
	established := time.Date(1872, time.March, 1, 0, 0, 0, 0, time.UTC)
	park, err := NewNationalPark("Yellowstone", "Wyoming", "https://img.example/ys.jpg", &established)
	require.NoError(t, err)
	assert.Equal(t, "Yellowstone", park.Name)

	_, err = NewNationalPark("", "", "", nil)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)

	future := time.Now().Add(48 * time.Hour)
	_, err = NewNationalPark("Future Park", "Nowhere", "", &future)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "established")
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"Easy", DifficultyEasy, true},
		{"moderate", DifficultyModerate, true},
		{" DIFFICULT ", DifficultyDifficult, true},
		{"0", DifficultyEasy, true},
		{"2", DifficultyDifficult, true},
		{"3", "", false},
		{"-1", "", false},
		{"hard", "", false},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidDifficulty, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestDifficultyUnmarshalJSON(t *testing.T) {
	var payload struct {
		Difficulty Difficulty `json:"difficulty"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":"Moderate"}`), &payload))
	assert.Equal(t, DifficultyModerate, payload.Difficulty)

	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":2}`), &payload))
	assert.Equal(t, DifficultyDifficult, payload.Difficulty)

	require.NoError(t, json.Unmarshal([]byte(`{"difficulty":null}`), &payload))
	assert.Equal(t, Difficulty(""), payload.Difficulty)

	err := json.Unmarshal([]byte(`{"difficulty":"Brutal"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	out, err := json.Marshal(struct {
		D Difficulty `json:"d"`
	}{DifficultyEasy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"Easy"}`, string(out))
}
