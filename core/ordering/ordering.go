package ordering

// Relocate moves the element at index from to index to, shifting the elements
// in between. Indices outside the slice are clamped. The input is not modified.
func Relocate[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) == 0 || from < 0 || from >= len(out) {
		return out
	}
	if to < 0 {
		to = 0
	}
	if to >= len(out) {
		to = len(out) - 1
	}
	if from == to {
		return out
	}

	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}

// Collapse removes every element for which marker returns true if the element
// directly before it in the result is a marker as well.
// It returns the collapsed slice and the number of removed elements.
func Collapse[T any](items []T, marker func(T) bool) ([]T, int) {
	out := make([]T, 0, len(items))
	removed := 0
	for _, item := range items {
		if marker(item) && len(out) > 0 && marker(out[len(out)-1]) {
			removed++
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

// FirstWins keeps the first element for each key and drops later duplicates.
// Elements for which key returns ok=false are always kept and never compared.
// It returns the filtered slice and the dropped keys in encounter order.
func FirstWins[T any](items []T, key func(T) (string, bool)) ([]T, []string) {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	var dropped []string
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			out = append(out, item)
			continue
		}
		if _, dup := seen[k]; dup {
			dropped = append(dropped, k)
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out, dropped
}

// Index returns the position of every keyed element. For repeated keys the
// first position is recorded.
func Index[T any](items []T, key func(T) (string, bool)) map[string]int {
	idx := make(map[string]int, len(items))
	for i, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		if _, exists := idx[k]; !exists {
			idx[k] = i
		}
	}
	return idx
}
