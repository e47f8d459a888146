package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer/pkg/machine"
)

// GenerateMermaid produces a Mermaid flowchart (graph LR) of a machine tree.
// It applies semantic styling:
// - Delay: [(Cylinder)] labelled with its start value
// - Parallel: {{Hexagon}} fork and ((Circle)) join
// - Feedback: a subgraph with a dotted back-edge labelled "fb"
// - Default: [Rectangle]
func GenerateMermaid(m machine.Machine) string {
	g := &mermaid{}
	g.line(0, "graph LR")
	g.line(1, `in(("in"))`)
	g.line(1, `out(("out"))`)

	entry, exit := g.render(m, 1)
	g.line(1, "in --> "+entry)
	g.line(1, exit+" --> out")

	return g.sb.String()
}

type mermaid struct {
	sb      strings.Builder
	counter int
}

func (g *mermaid) line(indent int, s string) {
	g.sb.WriteString(strings.Repeat("    ", indent))
	g.sb.WriteString(s)
	g.sb.WriteString("\n")
}

func (g *mermaid) nextID() string {
	g.counter++
	return fmt.Sprintf("n%d", g.counter)
}

// render writes m and returns the ids where signals enter and leave it.
func (g *mermaid) render(m machine.Machine, indent int) (string, string) {
	switch x := m.(type) {
	case *machine.CascadeMachine:
		children := x.Children()
		in1, out1 := g.render(children[0], indent)
		in2, out2 := g.render(children[1], indent)
		g.line(indent, fmt.Sprintf("%s --> %s", out1, in2))
		return in1, out2

	case *machine.ParallelMachine:
		fork, join := g.nextID(), g.nextID()
		g.line(indent, fmt.Sprintf(`%s{{"parallel"}}`, fork))
		g.line(indent, fmt.Sprintf(`%s(("pair"))`, join))
		for _, child := range x.Children() {
			in, out := g.render(child, indent)
			g.line(indent, fmt.Sprintf("%s --> %s", fork, in))
			g.line(indent, fmt.Sprintf("%s --> %s", out, join))
		}
		return fork, join

	case *machine.FeedbackMachine, *machine.Feedback2Machine:
		name := machine.NameOf(m)
		inner := m.(machine.Composite).Children()[0]
		g.line(indent, fmt.Sprintf(`subgraph %s ["%s"]`, g.nextID(), name))
		in, out := g.render(inner, indent+1)
		g.line(indent+1, fmt.Sprintf("%s -. fb .-> %s", out, in))
		g.line(indent, "end")
		return in, out

	case *machine.DelayMachine:
		id := g.nextID()
		g.line(indent, fmt.Sprintf(`%s[("delay %s")]`, id, escape(x.StartState().String())))
		return id, id

	default:
		id := g.nextID()
		g.line(indent, fmt.Sprintf(`%s["%s"]`, id, escape(machine.NameOf(m))))
		return id, id
	}
}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
