// SPDX-License-Identifier: MIT
package dm_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvdm/distance"
	"github.com/katalvlaran/lvdm/dm"
)

// ExampleReadDistance parses a hand-edited file and writes it back in canonical form.
func ExampleReadDistance() {
	in := "# pairwise distances\n\n\ta\t b\na\t0.0\t0.5\n\nb\t0.5\t0.0\n"

	m, err := dm.ReadDistance(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := m.Value("a", "b")
	fmt.Println(m.Labels(), v)

	_ = dm.Write(os.Stdout, m)

	// Output:
	// [a b] 0.5
	// 	a	b
	// a	0	0.5
	// b	0.5	0
}

// ExampleParse shows how syntax and semantic failures are told apart.
func ExampleParse() {
	_, err := dm.ReadDistance(strings.NewReader("\ta\tb\nb\t0\t1\na\t1\t0\n"))
	reason, _ := dm.ReasonOf(err)
	fmt.Println(errors.Is(err, dm.ErrFormat), reason)

	_, err = dm.ReadDistance(strings.NewReader("\ta\tb\na\t0\t1\nb\t2\t0\n"))
	fmt.Println(errors.Is(err, dm.ErrFormat), errors.Is(err, distance.ErrAsymmetric))

	// Output:
	// true mismatched id
	// false true
}
