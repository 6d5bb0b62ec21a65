// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Single is a range of exactly one value.
// It can be popped at most once; popping it again, or reading Front after
// the pop, violates its contract.
type Single[T any, P Policy] struct {
	Decl[T, P, SingleTag]
	value    T
	consumed bool
}

// SingleValue creates a one-element range checked by the [Default] policy.
func SingleValue[T any](v T) Single[T, Default] {
	return Single[T, Default]{value: v}
}

// SingleValueWith creates a one-element range checked by policy P.
func SingleValueWith[P Policy, T any](v T) Single[T, P] {
	return Single[T, P]{value: v}
}

// IsEmpty reports whether the value has been popped.
func (s *Single[T, P]) IsEmpty() bool {
	return s.consumed
}

// Pop consumes the value.
func (s *Single[T, P]) Pop() {
	assertWith[P](Not(BindIsEmpty(s)), "Single.Pop called twice")
	s.consumed = true
}

// Front returns the value without consuming it.
func (s *Single[T, P]) Front() T {
	assertWith[P](Not(BindIsEmpty(s)), "Single.Front called after Pop")
	return s.value
}
