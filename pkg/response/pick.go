package response

import "encoding/json"

// Pick renders v as a JSON object and keeps only the keys accepted by keep.
func Pick(v any, keep func(key string) bool) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k := range m {
		if !keep(k) {
			delete(m, k)
		}
	}
	return m, nil
}
