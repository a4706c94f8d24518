package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "raw pq error", err: serialization, want: true},
		{
			// Конфликт сериализации, проявившийся на COMMIT
			name: "wrapped commit error",
			err:  fmt.Errorf("%w: commit: %w", ErrTxFailed, serialization),
			want: true,
		},
		{name: "other pq error", err: &pq.Error{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("connection reset"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
