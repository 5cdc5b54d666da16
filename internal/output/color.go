package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ResolveColorMode returns whether styled output is enabled for the --color
// flag value. "never" and "always" force the answer. Anything else is auto:
// styling follows isTTY unless NO_COLOR is set.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal, including Cygwin and MSYS
// terminals on Windows.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
