// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ranges_noassert

package ranges

// Default is the policy used by constructors without an explicit policy.
// It panics like [Panic]; building with the ranges_noassert tag turns it
// into a no-op.
type Default struct{}

// Assert implements Policy.
func (Default) Assert(pred Predicate, msg string) {
	if !pred.Eval() {
		violated(msg)
	}
}

// AssertionsEnabled reports whether [Default] checks preconditions.
const AssertionsEnabled = true
