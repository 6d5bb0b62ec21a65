// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges_test

import (
	"testing"

	"code.hybscloud.com/ranges"
)

// drainAllocs reports the average allocations of draining at most limit
// elements from a fresh copy of r.
func drainAllocs[R ranges.Surface[T, P, G], PR ranges.Cursor[R, T], T any, P ranges.Policy, G any](r R, limit int) float64 {
	c := r
	return testing.AllocsPerRun(100, func() {
		c = r
		cur := PR(&c)
		for i := 0; i < limit && !cur.IsEmpty(); i++ {
			_ = cur.Front()
			cur.Pop()
		}
	})
}

func TestDrainDoesNotAllocate(t *testing.T) {
	cases := []struct {
		name   string
		allocs float64
	}{
		{"Single", drainAllocs(ranges.SingleValue(1), 1)},
		{"Single/Log", drainAllocs(ranges.SingleValueWith[ranges.Log]("x"), 1)},
		{"Composed", drainAllocs(odds, 3)},
		{"Repeated", drainAllocs(ranges.Repeat(odds, 50), 150)},
		{"Repeated/Forever", drainAllocs(ranges.RepeatCounter(ranges.Concat(ranges.Values(1, 2), ranges.SingleValue(3)), ranges.Forever{}), 1000)},
		{"List", drainAllocs(ranges.Repeat(ranges.Values(
			0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
			16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
		), 8), 256)},
	}
	for _, tc := range cases {
		if tc.allocs != 0 {
			t.Errorf("%s: allocs = %v; want 0", tc.name, tc.allocs)
		}
	}
}
