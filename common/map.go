package common

type Map[K comparable, V any] map[K]V

func NewMap[K comparable, V any]() Map[K, V] {
	return make(Map[K, V])
}

// Add overwrites any previous value for k.
func (m Map[K, V]) Add(k K, v V) {
	m[k] = v
}

func (m Map[K, V]) Contains(k K) bool {
	_, ok := m[k]
	return ok
}

func (m Map[K, V]) Lookup(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

func (m Map[K, V]) Keys() []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
