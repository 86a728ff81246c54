package bench

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/sys/cpu"
)

const (
	modulePath = "github.com/tphakala/go-nanops"
	simdPath   = "github.com/tphakala/simd"
	gonumPath  = "gonum.org/v1/gonum"
	develVer   = "(devel)"
	indent     = "    "
)

// ColumnHeader is the last header line, aligned with report lines.
const ColumnHeader = "   Speed  Call                     Array"

// writeHeader prints the title, environment and column header for fn.
func writeHeader(w io.Writer, fn string) error {
	lines := []string{
		fn + " benchmark",
		indent + environment(),
		indent + "Speed is reference (slow) time divided by fast time",
		"",
		ColumnHeader,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// environment describes the library versions, toolchain and CPU.
func environment() string {
	nanops, simd, gonum := develVer, develVer, develVer
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Path == modulePath && bi.Main.Version != "" {
			nanops = bi.Main.Version
		}
		for _, dep := range bi.Deps {
			switch dep.Path {
			case simdPath:
				simd = dep.Version
			case gonumPath:
				gonum = dep.Version
			}
		}
	}
	env := fmt.Sprintf("nanops %s; simd %s; gonum %s; %s %s/%s",
		nanops, simd, gonum, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if f := cpuFeatures(); len(f) > 0 {
		env += " [" + strings.Join(f, " ") + "]"
	}
	return env
}

// cpuFeatures lists the vector extensions the SIMD kernels can use.
func cpuFeatures() []string {
	var f []string
	add := func(has bool, name string) {
		if has {
			f = append(f, name)
		}
	}
	add(cpu.X86.HasSSE41, "sse4.1")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasFMA, "fma")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	return f
}
