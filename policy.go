// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

import "log/slog"

// Policy decides what happens when a range precondition does not hold.
//
// Assert evaluates pred (or not, at the policy's discretion). If pred is
// false the policy applies its failure behavior: it may panic, record the
// violation, or do nothing. When Assert returns, the caller proceeds as if
// the check passed.
//
// Policies are selected per range instantiation through a type parameter and
// invoked through their zero value, so implementations must be usable as
// zero values and should be zero-size.
type Policy interface {
	Assert(pred Predicate, msg string)
}

// assertWith invokes the zero value of policy P.
func assertWith[P Policy](pred Predicate, msg string) {
	var p P
	p.Assert(pred, msg)
}

// Violation is the panic value raised by [Panic] and the strict [Default].
type Violation struct {
	Msg string
}

// Error implements error.
func (v *Violation) Error() string { return "ranges: " + v.Msg }

// violated panics with a *Violation.
// Extracted as a noinline function so that Assert methods remain inlineable.
//
//go:noinline
func violated(msg string) {
	panic(&Violation{Msg: msg})
}

// Panic fails by panicking with a *[Violation].
type Panic struct{}

// Assert implements Policy.
func (Panic) Assert(pred Predicate, msg string) {
	if !pred.Eval() {
		violated(msg)
	}
}

// Ignore never evaluates the predicate and never fails.
type Ignore struct{}

// Assert implements Policy.
func (Ignore) Assert(Predicate, string) {}

// Log reports violations through slog.Default and continues.
type Log struct{}

// Assert implements Policy.
func (Log) Assert(pred Predicate, msg string) {
	if !pred.Eval() {
		slog.Default().Error("ranges: contract violation", "violation", msg)
	}
}
