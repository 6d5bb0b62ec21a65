// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ranges provides lazy, pull-based ranges composed from a small
// closed set of variants.
//
// A range is a single-pass cursor driven through three methods:
//
//   - IsEmpty: reports whether elements remain
//   - Front: observes the current element without consuming it
//   - Pop: consumes the current element
//
// Front and Pop are valid only on a non-empty range. Calling them on an
// empty range is a contract violation, reported through the range's
// assertion [Policy].
//
// # Declared Surface
//
// A range type declares three associated types by embedding [Decl]:
// its element type, its policy and a zero-size tag. The [Surface]
// constraint matches exactly the types making those declarations, and is
// what the algebra uses to accept operands. Types that do not declare the
// surface, such as int used as a repetition count, are never operands.
//
//   - [Decl]: Zero-size declaration of element, policy and tag
//   - [Surface]: Constraint on the declarations
//   - [Cursor]: Constraint on the pull protocol of *R
//   - [AssertRange]: Compile-time conformance assertion
//   - [IsRange]: The same check reported as a bool
//
// # Variants
//
//   - [Single]: Exactly one value ([SingleValue], [SingleValueWith])
//   - [Repeated]: A template range traversed several times
//   - [Composed]: Concatenation of two ranges
//   - [List]: Range over a persistent list ([Values], [ValuesWith], [FromList])
//
// Repetition counters:
//
//   - [Times]: Total number of passes
//   - [Forever]: Unbounded counter, never exhausted
//
// # Algebra
//
//   - [Concat], [ConcatWith]: Concatenation
//   - [Repeat], [RepeatCounter], [RepeatWith]: Repetition
//
// The plain forms give the result the left operand's policy; the With
// forms take it as an explicit type argument.
//
// All variants own their operands by value. Assigning a range copies its
// cursor; composing ranges copies the operands into the composite.
//
// # Policies
//
// Each variant checks its preconditions with a lazily evaluated
// [Predicate] built from [Same], [Not] and [BindMember], handed to the
// zero value of its policy type:
//
//   - [Default]: Panics, or does nothing when built with -tags ranges_noassert
//   - [Panic]: Panics with a *[Violation]
//   - [Log]: Logs through log/slog and continues
//   - [Ignore]: Never evaluates the predicate
//
// # Example
//
//	r := ranges.Repeat(ranges.Concat(ranges.SingleValue(1), ranges.SingleValue(2)), 3)
//	for ; !r.IsEmpty(); r.Pop() {
//		fmt.Print(r.Front())
//	}
//	// Output: 121212
package ranges
