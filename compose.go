// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Composed yields every element of R1, then every element of R2.
// Both operands are owned by value and share the element type T.
type Composed[T any, P Policy, R1 any, PR1 Cursor[R1, T], R2 any, PR2 Cursor[R2, T]] struct {
	Decl[T, P, ComposedTag]
	first  R1
	second R2
}

// IsEmpty reports whether both operands are exhausted.
func (c *Composed[T, P, R1, PR1, R2, PR2]) IsEmpty() bool {
	return PR1(&c.first).IsEmpty() && PR2(&c.second).IsEmpty()
}

// Pop consumes from the first operand while it has elements, then from the
// second.
func (c *Composed[T, P, R1, PR1, R2, PR2]) Pop() {
	assertWith[P](Not(BindIsEmpty(c)),
		"Composed.Pop called on empty range")
	if first := PR1(&c.first); !first.IsEmpty() {
		first.Pop()
		return
	}
	PR2(&c.second).Pop()
}

// Front returns the current element of whichever operand is active.
func (c *Composed[T, P, R1, PR1, R2, PR2]) Front() T {
	assertWith[P](Not(BindIsEmpty(c)),
		"Composed.Front called on empty range")
	if first := PR1(&c.first); !first.IsEmpty() {
		return first.Front()
	}
	return PR2(&c.second).Front()
}
