// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing and output
// formatting but delegate business logic to services.
package cli

import (
	"github.com/fatih/color"

	"github.com/example/electa/internal/core/calendar"
)

const rule = "────────────────────────────────────────────────────────────────"

// colorStatus renders an election status. fatih/color honours NO_COLOR.
func colorStatus(status string) string {
	switch status {
	case "created":
		return color.New(color.FgYellow).Sprint(status)
	case "open":
		return color.New(color.FgGreen).Sprint(status)
	case "closed":
		return color.New(color.FgBlue).Sprint(status)
	default:
		return status
	}
}

// formatTime renders Unix seconds as YYYY-MM-DD HH:MM:SS.
func formatTime(seconds int64) string {
	return calendar.Format(seconds)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
