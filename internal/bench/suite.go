package bench

import (
	"fmt"
	"iter"
	"strings"
)

// FastSuffix is appended to a function name to bind its fast variant.
const FastSuffix = "_fast"

// Case is one benchmark: two statements timed under the same setup.
type Case struct {
	// Name is the call and the array expression shown in the report.
	Name [2]string
	// Statements holds the fast call then the reference call.
	Statements []string
	Setup      string
	Repeat     int
}

const setupTemplate = `
	import slow.%s
	import nanops.%s as %s` + FastSuffix + `
	import rand
	import array
	a = %s
`

// BuildSuite classifies fn and returns its cases in table order. Rows
// without a signature for fn's kind are skipped. Unknown identifiers fail
// here, before anything is timed.
func BuildSuite(fn string) (iter.Seq[Case], error) {
	kind, err := Classify(fn)
	if err != nil {
		return nil, err
	}
	slot := kind.Slot()
	return func(yield func(Case) bool) {
		for _, row := range table {
			sig, ok := row.Signature(slot)
			if !ok {
				continue
			}
			c := Case{
				Name:       [2]string{fn + sig, row.Array},
				Statements: []string{fn + FastSuffix + sig, fn + sig},
				Setup:      setupScript(fn, row.Array),
				Repeat:     row.Repeat,
			}
			if !yield(c) {
				return
			}
		}
	}, nil
}

// setupScript imports both variants of fn and the array constructors and
// binds a to array.
func setupScript(fn, array string) string {
	lines := strings.Split(fmt.Sprintf(setupTemplate, fn, fn, fn, array), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
