package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/transducer/internal/presentation/graph"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		machine  machine.Machine
		contains []string
	}{
		{
			name:    "Delay Shape",
			machine: machine.Delay(domain.Int(7)),
			contains: []string{
				"graph LR",
				`n1[("delay 7")]`,
				"in --> n1",
				"n1 --> out",
			},
		},
		{
			name:    "Cascade Edge",
			machine: machine.Cascade(machine.Increment(domain.Int(1)), machine.Delay(domain.Int(0))),
			contains: []string{
				`n1["increment"]`,
				`n2[("delay 0")]`,
				"n1 --> n2",
				"in --> n1",
				"n2 --> out",
			},
		},
		{
			name:    "Parallel Fork And Join",
			machine: machine.Parallel(machine.Wire(), machine.Delay(domain.Undefined)),
			contains: []string{
				`n1{{"parallel"}}`,
				`n2(("pair"))`,
				"n1 --> n3",
				"n3 --> n2",
				"n1 --> n4",
				"n4 --> n2",
				`n4[("delay undefined")]`,
			},
		},
		{
			name:    "Feedback Subgraph",
			machine: machine.Counter(domain.Int(1), domain.Int(1)),
			contains: []string{
				`subgraph n1 ["feedback"]`,
				"n3 -. fb .-> n2",
				"end",
			},
		},
		{
			name:    "Feedback2 Subgraph",
			machine: machine.Feedback2(machine.Cascade(machine.Multiplier(), machine.Delay(domain.Int(1)))),
			contains: []string{
				`subgraph n1 ["feedback2"]`,
				`n2["multiplier"]`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.machine)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() missing %q\nGot:\n%s", want, got)
				}
			}
		})
	}
}
