// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ranges_noassert

package ranges

// Default is the policy used by constructors without an explicit policy.
// Built with ranges_noassert, it never evaluates its predicate.
type Default struct{}

// Assert implements Policy.
func (Default) Assert(Predicate, string) {}

// AssertionsEnabled reports whether [Default] checks preconditions.
const AssertionsEnabled = false
