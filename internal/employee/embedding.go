package employee

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
)

// EmbeddingVector accepts either a JSON array of numbers or a keyed numeric
// object such as {"0": 0.12, "1": -0.5}. Keyed input is flattened to the
// sequence of its values ordered by numeric key, falling back to
// lexicographic order for non-numeric keys. This mirrors how upstream
// clients have historically posted embeddings.
type EmbeddingVector []float64

func (v *EmbeddingVector) UnmarshalJSON(data []byte) error {
	var asArray []float64
	if err := json.Unmarshal(data, &asArray); err == nil {
		*v = asArray
		return nil
	}

	var asMap map[string]float64
	if err := json.Unmarshal(data, &asMap); err != nil {
		return errors.New("faceEmbedding must be an array or a keyed numeric object")
	}

	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}

	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		})
	} else {
		sort.Strings(keys)
	}

	values := make([]float64, 0, len(asMap))
	for _, k := range keys {
		values = append(values, asMap[k])
	}

	*v = values
	return nil
}
