// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

// Predicate is a nullary boolean check handed to [Policy.Assert].
// Building a predicate never evaluates it; Eval runs the check.
type Predicate interface {
	Eval() bool
}

// Same wraps a boolean snapshot taken at construction time.
type Same bool

// Eval returns the captured value.
func (s Same) Eval() bool { return bool(s) }

// Negated is the logical negation of P.
type Negated[P Predicate] struct {
	pred P
}

// Not wraps pred so that Eval reports !pred.Eval().
// The concrete type parameter keeps the wrapped predicate unboxed.
func Not[P Predicate](pred P) Negated[P] {
	return Negated[P]{pred: pred}
}

// Eval implements Predicate.
func (n Negated[P]) Eval() bool { return !n.pred.Eval() }

// Member binds a zero-argument query to the object it inspects.
type Member[O any] struct {
	obj   *O
	query func(*O) bool
}

// BindMember defers query(obj) until Eval.
// Method expressions fit directly:
//
//	BindMember(r, (*Single[int, Panic]).IsEmpty)
func BindMember[O any](obj *O, query func(*O) bool) Member[O] {
	return Member[O]{obj: obj, query: query}
}

// Eval implements Predicate.
func (m Member[O]) Eval() bool { return m.query(m.obj) }

// Emptiness binds IsEmpty of the object it inspects. Unlike [Member] it
// holds nothing but the object pointer, so boxing it into a [Predicate]
// does not allocate; the variants use it on every Front and Pop.
type Emptiness[O any, PO interface {
	*O
	IsEmpty() bool
}] struct {
	obj *O
}

// BindIsEmpty defers obj.IsEmpty() until Eval.
func BindIsEmpty[O any, PO interface {
	*O
	IsEmpty() bool
}](obj *O) Emptiness[O, PO] {
	return Emptiness[O, PO]{obj: obj}
}

// Eval implements Predicate.
func (e Emptiness[O, PO]) Eval() bool { return PO(e.obj).IsEmpty() }

// PredicateFunc adapts an ordinary function to [Predicate].
type PredicateFunc func() bool

// Eval calls f.
func (f PredicateFunc) Eval() bool { return f() }
