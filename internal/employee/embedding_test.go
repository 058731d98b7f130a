package employee_test

import (
	"encoding/json"
	"testing"

	"face-attendance/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddingVector_UnmarshalJSON(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		var v employee.EmbeddingVector
		err := json.Unmarshal([]byte(`[0.1, -0.2, 3]`), &v)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmbeddingVector{0.1, -0.2, 3}, v)
	})

	t.Run("keyed object ordered by numeric key", func(t *testing.T) {
		var v employee.EmbeddingVector
		// Key "10" must sort after "2", not lexicographically before it.
		err := json.Unmarshal([]byte(`{"10": 0.3, "2": 0.2, "0": 0.1}`), &v)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmbeddingVector{0.1, 0.2, 0.3}, v)
	})

	t.Run("non-numeric keys fall back to lexicographic order", func(t *testing.T) {
		var v employee.EmbeddingVector
		err := json.Unmarshal([]byte(`{"b": 2, "a": 1}`), &v)

		assert.NoError(t, err)
		assert.Equal(t, employee.EmbeddingVector{1, 2}, v)
	})

	t.Run("empty array", func(t *testing.T) {
		var v employee.EmbeddingVector
		err := json.Unmarshal([]byte(`[]`), &v)

		assert.NoError(t, err)
		assert.NotNil(t, v)
		assert.Empty(t, v)
	})

	t.Run("rejects non-numeric payloads", func(t *testing.T) {
		var v employee.EmbeddingVector
		err := json.Unmarshal([]byte(`"not an embedding"`), &v)

		assert.Error(t, err)
	})
}
