package zoomer

import (
	"fmt"
	"os"
)

// debugf prints a state transition to stderr. Only active when the zoomer
// was created with Options.Debug.
func (z *Zoomer) debugf(format string, args ...any) {
	if !z.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[zoomer] "+format+"\n", args...)
}

// SetDebug toggles stderr diagnostics.
func (z *Zoomer) SetDebug(debug bool) {
	z.debug = debug
}
