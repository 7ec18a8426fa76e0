package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTechStack(t *testing.T) {
	tests := []struct {
		name  string
		stack []string
		want  string
	}{
		{name: "Nil encodes as empty array", stack: nil, want: "[]"},
		{name: "Empty slice", stack: []string{}, want: "[]"},
		{name: "Ordered list", stack: []string{"Python", "Django"}, want: `["Python","Django"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeTechStack(tt.stack)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTechStack(t *testing.T) {
	t.Run("Round trip preserves order", func(t *testing.T) {
		encoded, err := encodeTechStack([]string{"Go", "SQL", "Kubernetes"})
		require.NoError(t, err)

		decoded, err := decodeTechStack(encoded)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, decoded)
	})

	t.Run("Empty column", func(t *testing.T) {
		decoded, err := decodeTechStack("")
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("Corrupt column", func(t *testing.T) {
		_, err := decodeTechStack("{not an array")
		assert.Error(t, err)
	})
}
