// Package envelope assembles the single textual payload submitted to the
// analysis oracle. The section order and tag names are part of the
// oracle-facing contract: the analysis instructions reference them by
// name, so they must not be reordered or renamed.
package envelope

import "strings"

// ProductionPlaceholder fills the production_code section until a caller
// can supply real context. Consumers treat the section as opaque.
const ProductionPlaceholder = "# Not provided in this context"

// Build wraps the raw test source and its structural dump into the fixed
// three-section envelope. Pure string assembly; the source appears
// verbatim, without re-encoding.
func Build(source, dump string) string {
	var b strings.Builder
	b.Grow(len(source) + len(dump) + 128)

	b.WriteString("<test_code>\n")
	b.WriteString(source)
	b.WriteString("\n</test_code>\n\n")

	b.WriteString("<ast>\n")
	b.WriteString(dump)
	b.WriteString("\n</ast>\n\n")

	b.WriteString("<production_code>\n")
	b.WriteString(ProductionPlaceholder)
	b.WriteString("\n</production_code>\n")

	return b.String()
}
