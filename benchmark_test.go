// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges_test

import (
	"testing"

	"code.hybscloud.com/ranges"
)

// BenchmarkSingleDrain measures one Front/Pop cycle of a Single.
func BenchmarkSingleDrain(b *testing.B) {
	b.ReportAllocs()
	s := ranges.SingleValue(1)
	sum := 0
	for b.Loop() {
		c := s
		sum += c.Front()
		c.Pop()
	}
	_ = sum
}

// BenchmarkRepeatComposed measures driving (1 + 2 + 3) * 100.
func BenchmarkRepeatComposed(b *testing.B) {
	b.ReportAllocs()
	r := ranges.Repeat(ranges.Concat(ranges.Concat(ranges.SingleValue(1), ranges.SingleValue(2)), ranges.SingleValue(3)), 100)
	for b.Loop() {
		c := r
		sum := 0
		for ; !c.IsEmpty(); c.Pop() {
			sum += c.Front()
		}
		if sum != 600 {
			b.Fatalf("sum = %d, want 600", sum)
		}
	}
}

// BenchmarkRepeatList measures driving a 16-element list range 64 times.
func BenchmarkRepeatList(b *testing.B) {
	b.ReportAllocs()
	vs := make([]int, 16)
	for i := range vs {
		vs[i] = i
	}
	r := ranges.Repeat(ranges.Values(vs...), 64)
	for b.Loop() {
		c := r
		n := 0
		for ; !c.IsEmpty(); c.Pop() {
			n++
		}
		if n != 16*64 {
			b.Fatalf("n = %d, want %d", n, 16*64)
		}
	}
}
