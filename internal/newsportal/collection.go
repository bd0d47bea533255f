package newsportal

// Record is anything kept in an ordered store collection.
type Record interface {
	RecordID() string
}

type Direction int

const (
	Up Direction = iota
	Down
)

// InsertAt returns a copy of list with v placed at index i. Indices past the
// end append, negative indices prepend.
func InsertAt[T any](list []T, i int, v T) []T {
	if i < 0 {
		i = 0
	}
	if i > len(list) {
		i = len(list)
	}

	out := make([]T, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, v)
	out = append(out, list[i:]...)
	return out
}

// RemoveByID returns a copy of list without the records whose id matches.
func RemoveByID[T Record](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}

// IndexByID returns the position of the record with id, or -1.
func IndexByID[T Record](list []T, id string) int {
	for i, r := range list {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// Swap returns a copy of list with positions i and j exchanged.
func Swap[T any](list []T, i, j int) []T {
	out := clone(list)
	if i < 0 || j < 0 || i >= len(out) || j >= len(out) {
		return out
	}
	out[i], out[j] = out[j], out[i]
	return out
}

// SwapAdjacent exchanges the element at i with its neighbour above or below.
func SwapAdjacent[T any](list []T, i int, dir Direction) []T {
	if dir == Up {
		return Swap(list, i, i-1)
	}
	return Swap(list, i, i+1)
}

// MoveTo splices the element at from out of the list and back in at to.
func MoveTo[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) {
		return clone(list)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(list) {
		to = len(list) - 1
	}

	v := list[from]
	rest := make([]T, 0, len(list)-1)
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)
	return InsertAt(rest, to, v)
}

func clone[T any](list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
