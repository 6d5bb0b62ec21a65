// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Repeated traverses a template range repeatedly.
//
// The counter C holds the total number of passes. The first pass is taken
// from the counter at construction; each later pass restarts the working
// copy from the untouched template. With [Forever] the range is infinite
// unless the template itself is empty.
type Repeated[T any, P Policy, R any, PR Cursor[R, T], C Counter[C]] struct {
	Decl[T, P, RepeatedTag]
	template R
	current  R
	counter  C
	// drained is set when the counter allowed no pass at all.
	drained bool
}

func newRepeated[T any, P Policy, R any, PR Cursor[R, T], C Counter[C]](r R, c C) Repeated[T, P, R, PR, C] {
	if c.Exhausted() {
		return Repeated[T, P, R, PR, C]{template: r, current: r, counter: c, drained: true}
	}
	return Repeated[T, P, R, PR, C]{template: r, current: r, counter: c.Decrement()}
}

// IsEmpty reports whether the current pass is exhausted and no further pass
// would produce an element.
func (r *Repeated[T, P, R, PR, C]) IsEmpty() bool {
	if r.drained {
		return true
	}
	return PR(&r.current).IsEmpty() && (r.counter.Exhausted() || PR(&r.template).IsEmpty())
}

// Pop advances the current pass, starting the next one when it runs out.
func (r *Repeated[T, P, R, PR, C]) Pop() {
	assertWith[P](Not(BindIsEmpty(r)),
		"Repeated.Pop called on empty range")
	cur := PR(&r.current)
	cur.Pop()
	if cur.IsEmpty() && !r.counter.Exhausted() {
		r.counter = r.counter.Decrement()
		r.current = r.template
	}
}

// Front returns the current element of the current pass.
func (r *Repeated[T, P, R, PR, C]) Front() T {
	assertWith[P](Not(BindIsEmpty(r)),
		"Repeated.Front called on empty range")
	return PR(&r.current).Front()
}
