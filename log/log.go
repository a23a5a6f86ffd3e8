package log

import (
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// SetOutput sets where diagnostics are written.  The default is the standard
// error.
func SetOutput(w io.Writer) {
	out = w
}

// Err prints a diagnostic according to format.  It also prepends the program
// name and appends a newline, much like the warnx(3) function from C.
func Err(format string, args ...any) {
	fmt.Fprintf(out, "reckon: "+format+"\n", args...)
}
