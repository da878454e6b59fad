package apiquery

// FilterAllowed returns the entries of m whose key is in allowed.
func FilterAllowed(m map[string]any, allowed ...string) map[string]any {
	out := make(map[string]any, len(allowed))
	for _, k := range allowed {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}
