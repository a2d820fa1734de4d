// ABOUTME: Deterministic prompt construction from a stats snapshot.
// ABOUTME: The advice endpoint consumes the prompt as opaque text.
package advice

import (
	"fmt"
	"strings"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
)

// BuildPrompt renders a consumption summary for the advice endpoint.
// It reads the same Snapshot the dashboards use, so the numbers the
// model sees always match what the user sees.
func BuildPrompt(snap *stats.Snapshot) string {
	var b strings.Builder

	b.WriteString("You are a harm-reduction coach. The user tracks cannabis and tobacco use to cut down.\n")
	b.WriteString("Their consumption over the last 30 days:\n\n")

	for _, c := range models.AllCategories {
		if models.IsWeighed(c) {
			fmt.Fprintf(&b, "- %s: %.0f sessions, %.2f g total, %.2f spent (week: %.0f sessions, %.2f g)\n",
				c,
				snap.MonthCount[c], snap.MonthWeight[c], snap.MonthCost[c],
				snap.WeekCount[c], snap.WeekWeight[c])
		} else {
			fmt.Fprintf(&b, "- %s: %.1f units, %.2f spent (week: %.1f units)\n",
				c,
				snap.MonthCount[c], snap.MonthCost[c],
				snap.WeekCount[c])
		}
	}

	fmt.Fprintf(&b, "\nActive days in the month: %d\n", snap.ActiveDays)
	for _, c := range models.AllCategories {
		if models.IsWeighed(c) {
			fmt.Fprintf(&b, "Per active day, %s: %.2f g, %.2f spent\n",
				c, snap.DailyAvgWeight[c], snap.DailyAvgCost[c])
		} else {
			fmt.Fprintf(&b, "Per active day, %s: %.2f units, %.2f spent\n",
				c, snap.DailyAvgCount[c], snap.DailyAvgCost[c])
		}
	}
	fmt.Fprintf(&b, "Lifetime spend: %.2f\n", snap.TotalCost)

	b.WriteString("\nGive one short, encouraging, concrete piece of advice for today. No medical claims.\n")

	return b.String()
}
