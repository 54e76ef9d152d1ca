package tween

import "weak"

// fieldBag is a pointer to a property bag.
type fieldBag[T any] interface {
	*T
	Target
}

// Weak returns a Target that reaches the fields of b without keeping b
// reachable. Once b is collected every field resolves to nil and timelines
// skip the writes.
func Weak[T any, B fieldBag[T]](b B) Target {
	return weakTarget[T, B]{p: weak.Make((*T)(b))}
}

type weakTarget[T any, B fieldBag[T]] struct {
	p weak.Pointer[T]
}

func (w weakTarget[T, B]) Field(p Prop) *float64 {
	v := w.p.Value()
	if v == nil {
		return nil
	}
	return B(v).Field(p)
}
