package app

// Signal holds a value and runs its effects with the new value on every
// transition. Setting the current value again is a no-op.
type Signal[T comparable] struct {
	V       T
	effects []func(T)
}

func NewSignal[T comparable](value T) *Signal[T] {
	return &Signal[T]{V: value}
}

func (s *Signal[T]) SetValue(value T) {
	if s.V == value {
		return
	}
	s.V = value
	for _, fn := range s.effects {
		fn(value)
	}
}

func (s *Signal[T]) AddEffect(fn func(T)) {
	s.effects = append(s.effects, fn)
}
