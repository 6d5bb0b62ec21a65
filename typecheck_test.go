// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ranges_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// typeChecker checks one-expression files against the ranges package,
// loaded from source.
type typeChecker struct {
	fset *token.FileSet
	conf types.Config
	file string
}

func newTypeChecker(t *testing.T) *typeChecker {
	t.Helper()
	if testing.Short() {
		t.Skip("loads the package from source")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	return &typeChecker{
		fset: fset,
		conf: types.Config{Importer: importer.ForCompiler(fset, "source", nil)},
		file: filepath.Join(wd, "misuse.go"),
	}
}

// check type-checks `var _ = expr` in a package importing ranges.
func (c *typeChecker) check(expr string) error {
	src := "package misuse\n\nimport \"code.hybscloud.com/ranges\"\n\nvar _ = " + expr + "\n"
	f, err := parser.ParseFile(c.fset, c.file, src, 0)
	if err != nil {
		return err
	}
	_, err = c.conf.Check("misuse", c.fset, []*ast.File{f}, nil)
	return err
}

func TestAlgebraTypeChecks(t *testing.T) {
	c := newTypeChecker(t)

	accepted := []string{
		"ranges.Concat(ranges.SingleValue(1), ranges.Values(2, 3))",
		"ranges.RepeatCounter(ranges.SingleValue(1), ranges.Forever{})",
		"ranges.Repeat(ranges.SingleValue(\"x\"), 2)",
		"ranges.ConcatWith[ranges.Log](ranges.SingleValue(1), ranges.SingleValueWith[ranges.Ignore](2))",
	}
	for _, expr := range accepted {
		if err := c.check(expr); err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
	}

	rejected := []string{
		"ranges.Concat(1, 2)",
		"ranges.Repeat(3, 2)",
		"ranges.Concat(ranges.SingleValue(1), ranges.SingleValue(\"x\"))",
		"ranges.RepeatCounter(ranges.SingleValue(1), 5)",
		"ranges.Concat(ranges.SingleValue(1), ranges.SingleTag{})",
	}
	for _, expr := range rejected {
		if err := c.check(expr); err == nil {
			t.Errorf("%s type-checks, want an error", expr)
		}
	}
}
