// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Range algebra.
//
// Concat and the Repeat family are the only ways to combine ranges. Each
// operand is constrained by [Surface], so the functions do not exist for
// types that fail to declare the range surface, and by [Cursor], which
// recovers the pointer method set of the operand value. Element types are
// unified at compile time: concatenating an int range with a string range
// does not type-check.
//
// Every operator comes in two forms. The plain form gives the result the
// policy of its left operand; the With form takes the policy as its first
// explicit type argument.

// Concat concatenates a and b. The result uses a's policy.
func Concat[R1 Surface[T, P, G1], R2 Surface[T, P2, G2], PR1 Cursor[R1, T], PR2 Cursor[R2, T], T any, P, P2 Policy, G1, G2 any](a R1, b R2) Composed[T, P, R1, PR1, R2, PR2] {
	return Composed[T, P, R1, PR1, R2, PR2]{first: a, second: b}
}

// ConcatWith concatenates a and b under policy P.
//
//	r := ranges.ConcatWith[ranges.Log](a, b)
func ConcatWith[P Policy, R1 Surface[T, P1, G1], R2 Surface[T, P2, G2], PR1 Cursor[R1, T], PR2 Cursor[R2, T], T any, P1, P2 Policy, G1, G2 any](a R1, b R2) Composed[T, P, R1, PR1, R2, PR2] {
	return Composed[T, P, R1, PR1, R2, PR2]{first: a, second: b}
}

// Repeat traverses r n times in total. The result uses r's policy.
// n <= 0 gives an empty range.
func Repeat[R Surface[T, P, G], PR Cursor[R, T], T any, P Policy, G any](r R, n int) Repeated[T, P, R, PR, Times] {
	return newRepeated[T, P, R, PR](r, Times(n))
}

// RepeatCounter traverses r as many times as c allows, for example
// [Forever]. The result uses r's policy.
func RepeatCounter[R Surface[T, P, G], PR Cursor[R, T], C Counter[C], T any, P Policy, G any](r R, c C) Repeated[T, P, R, PR, C] {
	return newRepeated[T, P, R, PR](r, c)
}

// RepeatWith traverses r as many times as c allows, under policy P.
func RepeatWith[P Policy, R Surface[T, P1, G], PR Cursor[R, T], C Counter[C], T any, P1 Policy, G any](r R, c C) Repeated[T, P, R, PR, C] {
	return newRepeated[T, P, R, PR](r, c)
}
