package usecase

import (
	"fmt"
	"strings"

	"gantt-chart-generator/internal/interval"
	"gantt-chart-generator/internal/render"
	"gantt-chart-generator/internal/schema"
)

// composePrompt builds the full instruction text sent to the model.
func composePrompt(instructions string, documents []string, est interval.Estimate) string {
	var sb strings.Builder

	sb.WriteString(promptRole)
	sb.WriteString("\n\n")
	sb.WriteString(est.Hint())
	sb.WriteString("\n\n")

	sb.WriteString("STYLE REFERENCE:\n")
	sb.WriteString("- Clean grid with phase rows and task rows aligned to interval columns\n")
	sb.WriteString("- Each phase carries a colorKey from this palette:\n")
	for _, c := range render.Palette {
		fmt.Fprintf(&sb, "  - %s (%s)\n", c.Key, c.Bar)
	}
	sb.WriteString("\n")

	sb.WriteString("USER INSTRUCTIONS:\n")
	sb.WriteString(strings.TrimSpace(instructions))
	sb.WriteString("\n\n")

	sb.WriteString("REFERENCE DOCUMENTS:\n")
	sb.WriteString(formatDocuments(documents))
	sb.WriteString("\n\n")

	sb.WriteString("OUTPUT SCHEMA (JSON Schema):\n")
	sb.Write(schema.Document())
	sb.WriteString("\n\n")

	sb.WriteString(promptUnitRules)
	sb.WriteString("\n\n")
	sb.WriteString(promptPlanningRules)
	sb.WriteString("\n\n")
	sb.WriteString(promptClosing)

	return sb.String()
}

func formatDocuments(documents []string) string {
	if len(documents) == 0 {
		return noDocuments
	}
	parts := make([]string, len(documents))
	for i, doc := range documents {
		parts[i] = fmt.Sprintf("--- Document %d ---\n%s\n", i+1, doc)
	}
	return strings.Join(parts, "\n")
}
