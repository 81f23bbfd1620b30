package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"CryptoStudy/internal/calculator"
	"CryptoStudy/internal/model"
)

const dateLayout = "2006-01-02"

// descriptions expand the coarse interpretation label in the report body.
var descriptions = map[string]string{
	calculator.VolLow:      "Low Volatility (generally safer, less price fluctuation)",
	calculator.VolModerate: "Moderate Volatility (some fluctuation, potential for growth and risk)",
	calculator.VolHigh:     "High Volatility (significant fluctuation, higher risk but also potential for higher returns)",
	calculator.VolNA:       "N/A",
}

// FormatGain renders a fractional gain as a percentage with two decimals.
func FormatGain(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct*100)
}

// Generate renders the full analysis report. The output is deterministic for
// a given result: no timestamps or environment data appear in the body.
func Generate(res *model.StudyResult) string {
	var b strings.Builder

	title := fmt.Sprintf("%s Historical Data Analysis Report", res.Symbol)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	b.WriteString(fmt.Sprintf("Data Range: %s to %s\n\n",
		res.RangeStart.Format(dateLayout), res.RangeEnd.Format(dateLayout)))

	b.WriteString("1. Peak Price:\n")
	if res.Peak != nil {
		b.WriteString(fmt.Sprintf("   Date: %s\n", res.Peak.Date.Format(dateLayout)))
		b.WriteString(fmt.Sprintf("   Peak Price (Close): %.2f USD\n\n", res.Peak.Price))
	} else {
		b.WriteString("   No data available.\n\n")
	}

	b.WriteString("2. Best Single-Day Gain:\n")
	if res.BestGain != nil {
		b.WriteString(fmt.Sprintf("   Date: %s\n", res.BestGain.Date.Format(dateLayout)))
		b.WriteString(fmt.Sprintf("   Highest Single-Day Gain: %s\n\n", FormatGain(res.BestGain.Pct)))
	} else {
		b.WriteString("   No data available.\n\n")
	}

	b.WriteString(fmt.Sprintf("3. Volatility Index (last %d days, annualized):\n", res.VolatilityWindow))
	if res.LatestVolatility != nil {
		b.WriteString(fmt.Sprintf("   Value: %.2f\n", res.LatestVolatility.Value))
		b.WriteString(fmt.Sprintf("   Interpretation: %s\n\n", descriptions[res.VolatilityLabel]))
	} else {
		b.WriteString("   N/A (not enough data for calculation)\n")
		b.WriteString(fmt.Sprintf("   Interpretation: %s\n\n", descriptions[calculator.VolNA]))
	}

	b.WriteString(fmt.Sprintf("4. Bear Timelines (average daily drop > %.1f%% over %d days):\n",
		res.TrendThreshold*100, res.TrendWindow))
	writeTimelines(&b, res.BearTimelines, "bear")
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("5. Bull Timelines (average daily rise > %.1f%% over %d days):\n",
		res.TrendThreshold*100, res.TrendWindow))
	writeTimelines(&b, res.BullTimelines, "bull")
	b.WriteString("\n")

	return b.String()
}

func writeTimelines(b *strings.Builder, timelines []model.Timeline, polarity string) {
	if len(timelines) == 0 {
		fmt.Fprintf(b, "   No significant %s timelines identified based on criteria.\n", polarity)
		return
	}
	for _, tl := range timelines {
		fmt.Fprintf(b, "   - From %s to %s\n",
			tl.Start.Format(dateLayout), tl.End.Format(dateLayout))
	}
}

// Write saves the report to path, creating parent directories as needed.
func Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// FormatSummary renders a short notification message for the result.
func FormatSummary(res *model.StudyResult, reportPath string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s study complete</b>\n\n", res.Symbol))
	b.WriteString(fmt.Sprintf("Range: %s to %s (%d bars)\n",
		res.RangeStart.Format(dateLayout), res.RangeEnd.Format(dateLayout), res.BarCount))
	if res.Peak != nil {
		b.WriteString(fmt.Sprintf("Peak: %.2f USD on %s\n", res.Peak.Price, res.Peak.Date.Format(dateLayout)))
	}
	if res.BestGain != nil {
		b.WriteString(fmt.Sprintf("Best day: %s on %s\n", FormatGain(res.BestGain.Pct), res.BestGain.Date.Format(dateLayout)))
	}
	if res.LatestVolatility != nil {
		b.WriteString(fmt.Sprintf("Volatility: %.2f (%s)\n", res.LatestVolatility.Value, res.VolatilityLabel))
	} else {
		b.WriteString("Volatility: not enough data\n")
	}
	b.WriteString(fmt.Sprintf("Timelines: %d bear, %d bull\n", len(res.BearTimelines), len(res.BullTimelines)))
	b.WriteString(fmt.Sprintf("\nReport written to %s", reportPath))
	return b.String()
}
