// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Decl declares the associated types of a range: the element type T, the
// assertion policy P and the tag G. It is zero-size; embed it as the first
// field of a range type to publish the declarations.
//
// Example:
//
//	type Countdown struct {
//		ranges.Decl[int, ranges.Panic, CountdownTag]
//		n int
//	}
type Decl[T any, P Policy, G any] struct{}

// RangeElem is the phantom element type marker.
func (Decl[T, P, G]) RangeElem() T { panic("phantom") }

// RangePolicy returns the zero value of the declared policy.
func (Decl[T, P, G]) RangePolicy() P {
	var p P
	return p
}

// RangeTag returns the zero value of the declared tag.
func (Decl[T, P, G]) RangeTag() G {
	var g G
	return g
}

// Surface is the declared surface of a range: element, policy and tag.
// It is the constraint that gates [Concat] and [Repeat]; types that do not
// declare all three names, such as int or a bare tag, never match.
//
// Surface says nothing about IsEmpty, Front or Pop; see [Cursor].
type Surface[T any, P Policy, G any] interface {
	RangeElem() T
	RangePolicy() P
	RangeTag() G
}

// Cursor is the pull protocol of a range value R, implemented on *R.
//
// Front and Pop are valid only while IsEmpty reports false. Calling either
// on an empty range is a contract violation reported through the range's
// policy.
type Cursor[R any, T any] interface {
	*R
	IsEmpty() bool
	Front() T
	Pop()
}

// AssertRange fails to compile if its argument does not declare the range
// surface. The result is meant to be discarded:
//
//	var _ = ranges.AssertRange(Countdown{})
func AssertRange[R Surface[T, P, G], T any, P Policy, G any](R) struct{} {
	return struct{}{}
}

// Tags of the built-in variants.
type (
	SingleTag   struct{}
	RepeatedTag struct{}
	ComposedTag struct{}
	ListTag     struct{}
)
