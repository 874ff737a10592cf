package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/actionflow/pkg/domain"
)

// RunOverlay contains run results to visualize on the graph.
type RunOverlay struct {
	// Completed is the number of leading actions that succeeded.
	Completed int
	// Failed is the index of the failing action, or -1.
	Failed int
}

// NewRunOverlay builds the overlay of a finished run. failure is nil when every action succeeded.
func NewRunOverlay(completed int, failure *domain.StepError) *RunOverlay {
	o := &RunOverlay{Completed: completed, Failed: -1}
	if failure != nil {
		o.Failed = failure.Index
	}
	return o
}

// contextNodeID names the node standing for values seeded into the context before the run.
const contextNodeID = "ctx"

// GenerateMermaid produces a Mermaid flowchart syntax string from a pipeline.
// Actions are chained in execution order with solid arrows. A dotted arrow labeled with the key
// links an action to the earlier action that wrote its input, when that is not its direct
// predecessor. Inputs no earlier action writes come from the context node.
// It also applies overlay styles (completed/failed) if provided.
func GenerateMermaid(p domain.Pipeline, overlay *RunOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	writer := make(map[string]int)
	seeded := false
	var flows []string

	for i, a := range p.Actions {
		id := stepID(i)
		label := fmt.Sprintf("%s<br/>%s", escapeLabel(a.Name), escapeLabel(a.Class))
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))

		if i > 0 {
			arrow := "-->"
			if prev := p.Actions[i-1]; a.InputID != "" && prev.OutputID == a.InputID {
				arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(a.InputID))
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", stepID(i-1), arrow, id))
		}

		if a.InputID != "" {
			from, ok := writer[a.InputID]
			switch {
			case !ok:
				seeded = true
				flows = append(flows, fmt.Sprintf("    %s -. \"%s\" .-> %s\n", contextNodeID, escapeLabel(a.InputID), id))
			case from != i-1:
				flows = append(flows, fmt.Sprintf("    %s -. \"%s\" .-> %s\n", stepID(from), escapeLabel(a.InputID), id))
			}
		}
		if a.OutputID != "" {
			writer[a.OutputID] = i
		}
	}

	if seeded {
		sb.WriteString(fmt.Sprintf("    %s((\"context\"))\n", contextNodeID))
	}
	for _, f := range flows {
		sb.WriteString(f)
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef completed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		for i := 0; i < overlay.Completed && i < p.Len(); i++ {
			sb.WriteString(fmt.Sprintf("    class %s completed;\n", stepID(i)))
		}
		if overlay.Failed >= 0 && overlay.Failed < p.Len() {
			sb.WriteString(fmt.Sprintf("    class %s failed;\n", stepID(overlay.Failed)))
		}
	}

	return sb.String()
}

// stepID is 1-based so it lines up with the step numbers in logs.
func stepID(index int) string {
	return fmt.Sprintf("s%d", index+1)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
