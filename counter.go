// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Counter is the F-bounded constraint for repetition counters.
// Decrement returns the counter with one pass taken away.
type Counter[C any] interface {
	Exhausted() bool
	Decrement() C
}

// Times counts a finite number of passes.
type Times int

// Exhausted reports whether no passes remain.
func (n Times) Exhausted() bool { return n <= 0 }

// Decrement implements Counter.
func (n Times) Decrement() Times { return n - 1 }

// Forever is the unbounded counter: it is never exhausted and
// decrementing it changes nothing.
type Forever struct{}

// Exhausted always reports false.
func (Forever) Exhausted() bool { return false }

// Decrement implements Counter.
func (f Forever) Decrement() Forever { return f }
