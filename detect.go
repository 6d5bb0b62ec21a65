// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges

import "reflect"

var policyType = reflect.TypeFor[Policy]()

// IsRange reports whether C declares the range surface: a RangeElem method
// yielding the element type, a RangePolicy method yielding a [Policy] and a
// RangeTag method yielding the tag. The tag is checked for presence only.
//
// Only declarations are inspected. No value of C is constructed and C need
// not implement IsEmpty, Front or Pop.
//
// IsRange accepts exactly the types satisfying the [Surface] constraint
// that gates the algebra; it answers the same question as a value.
func IsRange[C any]() bool {
	return declaresSurface(reflect.TypeFor[C]())
}

func declaresSurface(t reflect.Type) bool {
	// Interface method types carry no receiver.
	recv := 1
	if t.Kind() == reflect.Interface {
		recv = 0
	}
	result := func(name string) reflect.Type {
		m, ok := t.MethodByName(name)
		if !ok || m.Type.NumIn() != recv || m.Type.NumOut() != 1 {
			return nil
		}
		return m.Type.Out(0)
	}

	if result("RangeElem") == nil || result("RangeTag") == nil {
		return false
	}
	policy := result("RangePolicy")
	return policy != nil && policy.Implements(policyType)
}
