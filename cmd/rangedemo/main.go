// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command rangedemo prints a few composed ranges and the detector's verdict
// on some types.
//
// On a terminal each element v is printed as the glyph '0'+v; otherwise, or
// with -plain, elements are printed as space-separated integers.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"code.hybscloud.com/ranges"
	"github.com/mattn/go-isatty"
)

type printer struct {
	w     *bufio.Writer
	limit int
	plain bool
}

// emit drives r until it is empty or limit elements have been written.
// r is a copy; the caller's range is untouched.
func emit[R any, PR ranges.Cursor[R, int]](p *printer, r R) {
	c := PR(&r)
	for i := 0; !c.IsEmpty() && i < p.limit; c.Pop() {
		v := c.Front()
		if p.plain {
			if i > 0 {
				p.w.WriteByte(' ')
			}
			p.w.WriteString(strconv.Itoa(v))
		} else {
			p.w.WriteByte(byte('0' + v))
		}
		i++
	}
	p.w.WriteByte('\n')
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func main() {
	limit := flag.Int("limit", 77, "maximum number of elements printed per range")
	plain := flag.Bool("plain", false, "print integers instead of glyphs")
	flag.Parse()

	fd := os.Stdout.Fd()
	p := &printer{
		w:     bufio.NewWriter(os.Stdout),
		limit: *limit,
		plain: *plain || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
	defer p.w.Flush()

	one, two, three := ranges.SingleValue(1), ranges.SingleValue(2), ranges.SingleValue(3)
	emit(p, ranges.Repeat(one, 5))
	emit(p, ranges.Repeat(ranges.Concat(ranges.Concat(one, two), three), 4))

	odds := ranges.Concat(ranges.Concat(one, three), ranges.SingleValue(5))
	emit(p, ranges.RepeatCounter(ranges.Concat(ranges.Repeat(odds, 2), ranges.SingleValue(-16)), ranges.Forever{}))

	fmt.Fprintf(p.w, "%d %d %d\n",
		bit(ranges.IsRange[ranges.Single[int, ranges.Default]]()),
		bit(ranges.IsRange[int]()),
		bit(ranges.IsRange[ranges.SingleTag]()))
}
