package log

import (
	"os"
	"strings"
	"testing"
)

func TestErr(t *testing.T) {
	var sb strings.Builder
	SetOutput(&sb)
	defer SetOutput(os.Stderr)

	Err("%s: %d", "syntax error", 42)
	Err("plain")

	want := "reckon: syntax error: 42\nreckon: plain\n"
	if sb.String() != want {
		t.Fatalf("Expected ‘%q’ but got ‘%q’", want, sb.String())
	}
}
