package argh

import (
	"fmt"
	"strings"
)

// Usage renders one line per registered option, in registration order, as
// four left-aligned space-padded columns: name, default-value display, help
// text, and a REQUIRED/NOT REQUIRED marker. Each column is padded to the
// longest entry in that column plus one space.
func (a *Argh) Usage() string {
	nameW, defW, helpW, reqW := 0, 0, 0, 0
	for _, o := range a.options {
		nameW = max(nameW, len(o.Name()))
		defW = max(defW, len(o.Default()))
		helpW = max(helpW, len(o.Help()))
		reqW = max(reqW, len(requiredMarker(o)))
	}

	var b strings.Builder
	for _, o := range a.options {
		fmt.Fprintf(&b, "%-*s%-*s%-*s%-*s\n",
			nameW+1, o.Name(),
			defW+1, o.Default(),
			helpW+1, o.Help(),
			reqW+1, requiredMarker(o))
	}
	return b.String()
}

func requiredMarker(o Option) string {
	if o.Required() {
		return "REQUIRED"
	}
	return "NOT REQUIRED"
}
