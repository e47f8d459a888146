package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer/pkg/machine"
)

// Describe builds a markdown outline of a machine tree: one bullet per machine
// with its kind and start state, nested like the composition.
func Describe(title, description string, m machine.Machine) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if description != "" {
		fmt.Fprintf(&sb, "%s\n\n", description)
	}
	fmt.Fprintf(&sb, "**Start state:** `%s`\n\n", m.StartState())
	sb.WriteString("## Structure\n\n")
	describe(&sb, m, 0)
	return sb.String()
}

func describe(sb *strings.Builder, m machine.Machine, depth int) {
	fmt.Fprintf(sb, "%s- **%s** start `%s`\n", strings.Repeat("  ", depth), machine.NameOf(m), m.StartState())
	if c, ok := m.(machine.Composite); ok {
		for _, child := range c.Children() {
			describe(sb, child, depth+1)
		}
	}
}
