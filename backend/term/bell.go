package term

import (
	"io"
	"os"
)

// Bell plays click feedback as the terminal bell.
type Bell struct {
	W io.Writer
}

// PlayClick rings the bell on W, or stderr when W is nil.
func (b Bell) PlayClick() {
	w := b.W
	if w == nil {
		w = os.Stderr
	}
	_, _ = io.WriteString(w, "\a")
}
