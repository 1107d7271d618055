// Package output provides utilities for formatting and displaying estimate
// results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/buildcost/estimator/internal/estimator"
	"github.com/buildcost/estimator/pkg/estimate"
)

// PrettyString renders a human-readable rather than machine-readable table.
func PrettyString(results []estimator.ProjectEstimate) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	for i, result := range results {
		est := result.Estimate
		fmt.Fprintf(&b, "--- Estimate for project %s ---\n", est.ProjectName)
		fmt.Fprintf(&b, "Location: %s | Quality: %s | Floors: %d | Area: %s\n",
			result.Spec.Location, result.Spec.MaterialQuality, result.Spec.FloorCount,
			p.Sprintf("%.0f sq.ft", result.Spec.TotalAreaSqft))

		fmt.Fprintf(&b, "Category      | Amount (PKR)\n")
		fmt.Fprintf(&b, "________      | ____________\n")
		for _, category := range estimate.CategoryOrder() {
			lines, present := est.Breakdown[category]
			if !present {
				continue
			}
			fmt.Fprintf(&b, "%-13s | %s\n", category, p.Sprintf("%.0f", estimate.AdditiveSum(lines)))
			for _, line := range lines {
				marker := ""
				if line.Informational {
					marker = " *"
				}
				fmt.Fprintf(&b, "    %-24s %-28s %-18s %s%s\n",
					line.Description, line.QuantityDisplay, line.RateDisplay,
					p.Sprintf("%.0f", line.Amount), marker)
			}
		}
		fmt.Fprintf(&b, "%-13s | %s\n", "Total", p.Sprintf("%.0f", est.TotalCost))
		fmt.Fprintf(&b, "Estimated duration: %d days | Accuracy: %s\n",
			est.EstimatedDurationDays, est.AccuracyLevel)
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "Note: %s\n", warning)
		}
		fmt.Fprintf(&b, "Lines marked * are illustrative and not part of the total.\n")
		if i < len(results)-1 {
			fmt.Fprintf(&b, "\n")
		}
	}

	return b.String()
}

// PrettyFormat outputs the human-readable table to stdout.
func PrettyFormat(results []estimator.ProjectEstimate) {
	fmt.Print(PrettyString(results))
}

// CsvString renders the breakdowns in comma-separated value format, one row
// per line item plus a total row per project.
func CsvString(results []estimator.ProjectEstimate) string {
	var b strings.Builder

	b.WriteString(`"project","category","description","quantity","rate","amount","informational"` + "\n")
	for _, result := range results {
		est := result.Estimate
		for _, category := range estimate.CategoryOrder() {
			lines, present := est.Breakdown[category]
			if !present {
				continue
			}
			for _, line := range lines {
				fmt.Fprintf(&b, `"%s","%s","%s","%s","%s","%.0f","%t"`+"\n",
					est.ProjectName, category, line.Description,
					line.QuantityDisplay, line.RateDisplay, line.Amount, line.Informational)
			}
		}
		fmt.Fprintf(&b, `"%s","Total","","","","%.0f","false"`+"\n", est.ProjectName, est.TotalCost)
	}

	return b.String()
}

// CsvFormat outputs in comma-separated value format to stdout.
func CsvFormat(results []estimator.ProjectEstimate) {
	fmt.Print(CsvString(results))
}
