package models

// Builders are values: every With* call returns a copy, so a builder can be
// forked and reused. Slices and maps are copied on write so that forks
// never share backing storage.

func appendCopy[T any](s []T, v ...T) []T {
	out := make([]T, 0, len(s)+len(v))
	out = append(out, s...)
	return append(out, v...)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func setCopy[V any](m map[string]V, key string, v V) map[string]V {
	out := make(map[string]V, len(m)+1)
	for k, e := range m {
		out[k] = e
	}
	out[key] = v
	return out
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, e := range m {
		out[k] = e
	}
	return out
}

func ptr[T any](v T) *T { return &v }
