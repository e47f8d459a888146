package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Using a subtle gradient-like color scheme (Teal/Cyan)
	lines := []struct {
		text  string
		color string
	}{
		{` _                            _                     `, "#2dd4bf"},
		{`| |_ _ __ __ _ _ __  ___  __| |_   _  ___ ___ _ __ `, "#22d3ee"},
		{`| __| '__/ _' | '_ \/ __|/ _' | | | |/ __/ _ \ '__|`, "#38bdf8"},
		{`| |_| | | (_| | | | \__ \ (_| | |_| | (_|  __/ |   `, "#60a5fa"},
		{` \__|_|  \__,_|_| |_|___/\__,_|\__,_|\___\___|_|   `, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
