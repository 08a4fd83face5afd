package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/allisson/derivepass/internal/derive/domain"
)

// RunPresets writes the selectable character set presets to io.Writer, one
// row per preset with its index, name, and full alphabet.
func RunPresets(io IOTuple) error {
	w := tabwriter.NewWriter(io.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "INDEX\tNAME\tALPHABET"); err != nil {
		return err
	}
	for _, preset := range domain.Presets() {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", preset.Index, preset.Name, preset.Alphabet); err != nil {
			return err
		}
	}

	return w.Flush()
}
