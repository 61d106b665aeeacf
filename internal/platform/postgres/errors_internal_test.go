package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/parky-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapEntityError(t *testing.T) {
	t.Parallel()

	pg := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name     string
		mapping  entityErrors
		err      error
		want     error
		wantSame bool
	}{
		{name: "nil", mapping: trailErrors, err: nil, want: nil},
		{name: "trail not found", mapping: trailErrors, err: sql.ErrNoRows, want: store.ErrTrailNotFound, wantSame: true},
		{name: "trail duplicate", mapping: trailErrors, err: pg(uniqueViolationCode), want: store.ErrTrailExists, wantSame: true},
		{
			name:     "trail missing park",
			mapping:  trailErrors,
			err:      pg(foreignKeyViolationCode),
			want:     store.ErrNationalParkNotFound,
			wantSame: true,
		},
		{name: "park duplicate", mapping: parkErrors, err: pg(uniqueViolationCode), want: store.ErrNationalParkExists, wantSame: true},
		{name: "user not found", mapping: userErrors, err: sql.ErrNoRows, want: store.ErrUserNotFound, wantSame: true},
		{name: "park foreign key falls back", mapping: parkErrors, err: pg(foreignKeyViolationCode), want: store.ErrInvalidEntity},
		{name: "check violation falls back", mapping: trailErrors, err: pg(checkViolationCode), want: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.mapping.mapEntityError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if tt.wantSame {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
