// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

import "github.com/benbjohnson/immutable"

// List is a range over a persistent immutable.List.
// The list is shared, never mutated; a List range owns only its position,
// so copying it is constant-cost regardless of the list length.
type List[T any, P Policy] struct {
	Decl[T, P, ListTag]
	imm  *immutable.List
	next int
}

// Values creates a range over vs checked by the [Default] policy.
func Values[T any](vs ...T) List[T, Default] {
	return List[T, Default]{imm: buildList(vs)}
}

// ValuesWith creates a range over vs checked by policy P.
func ValuesWith[P Policy, T any](vs ...T) List[T, P] {
	return List[T, P]{imm: buildList(vs)}
}

// FromList creates a range over an existing list whose elements are all
// of type T. A nil list is an empty range. The element types are not
// checked up front: Front panics with a runtime type assertion error on the
// first element that is not a T, whatever the policy.
func FromList[T any](l *immutable.List) List[T, Default] {
	return List[T, Default]{imm: l}
}

func buildList[T any](vs []T) *immutable.List {
	imm := immutable.NewList()
	if len(vs) > 0 {
		b := immutable.NewListBuilder(imm)
		for _, v := range vs {
			b.Append(v)
		}
		imm = b.List()
	}
	return imm
}

// Len returns the number of elements left.
func (l *List[T, P]) Len() int {
	if l.imm == nil {
		return 0
	}
	return l.imm.Len() - l.next
}

// IsEmpty reports whether every element has been popped.
func (l *List[T, P]) IsEmpty() bool {
	return l.Len() <= 0
}

// Pop moves to the next element.
func (l *List[T, P]) Pop() {
	assertWith[P](Not(BindIsEmpty(l)), "List.Pop called on empty range")
	l.next++
}

// Front returns the element at the current position. On an exhausted range
// whose policy returns, such as [Ignore] or [Log], it returns the zero T.
func (l *List[T, P]) Front() T {
	assertWith[P](Not(BindIsEmpty(l)), "List.Front called on empty range")
	if l.IsEmpty() {
		var zero T
		return zero
	}
	return l.imm.Get(l.next).(T)
}
