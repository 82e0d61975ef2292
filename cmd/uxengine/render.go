package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uxengine/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func renderDecision(source string, d types.Decision) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(source) + "\n")
	writeField(&b, "session", d.SessionID)
	writeField(&b, "persona", fmt.Sprintf("%s (%.0f%% confidence)", d.Persona.Type, d.Persona.Confidence))
	writeField(&b, "layout", fmt.Sprintf("%d col / %s nav / %s cta, budget %dms",
		d.Layout.Layout.Columns, d.Layout.Layout.Navigation, d.Layout.Layout.CTA,
		d.Layout.Performance.MaxLoadTime))
	writeField(&b, "intent", fmt.Sprintf("%.0f (%s, urgency %s, conv %.0f%%)",
		d.Intent.Score, d.Intent.Stage, d.Intent.Urgency, d.Intent.PredictedConversion))

	if d.Adjustments.Empty() {
		writeField(&b, "adjustments", okStyle.Render("none"))
		return b.String()
	}

	var fired []string
	if d.Adjustments.Performance != nil {
		fired = append(fired, "performance("+strings.Join(d.Adjustments.Performance.ExceededBudgets, ",")+")")
	}
	if d.Adjustments.Engagement != nil {
		fired = append(fired, "engagement("+strings.Join(d.Adjustments.Engagement.Triggers, ",")+")")
	}
	if d.Adjustments.Conversion != nil {
		fired = append(fired, "conversion("+strings.Join(d.Adjustments.Conversion.Triggers, ",")+")")
	}
	writeField(&b, "adjustments", warnStyle.Render(strings.Join(fired, " ")))
	return b.String()
}

func writeField(b *strings.Builder, key, val string) {
	b.WriteString("  " + keyStyle.Render(fmt.Sprintf("%-12s", key)) + valStyle.Render(val) + "\n")
}
