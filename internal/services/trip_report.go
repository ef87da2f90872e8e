package services

import (
	"fmt"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

var sectionMarkers = []string{"Premium:", "Standard:", "Budget:", "Luxury:", "Mid-Range:", "Day ", "BEST CHOICE:", "HIGHLIGHTS:"}

// BuildTripSummary renders the human-readable trip report: the recognizable
// lines of each advisory reply, the cost breakdown and the budget verdict.
// Presentation only; the structured result is the data contract.
func BuildTripSummary(req request_models.PlanTripRequest, result *response_models.TripPlanResult, flightReply, hotelReply, activityReply string) string {
	divider := strings.Repeat("=", 50)

	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString("TRIP SUMMARY\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%s -> %s, %d nights, $%.0f budget\n", req.Origin, req.Destination, req.Nights, req.Budget)

	b.WriteString("\nFLIGHTS:\n")
	writeAdvisorSection(&b, flightReply)

	b.WriteString("\nHOTELS:\n")
	writeAdvisorSection(&b, hotelReply)

	b.WriteString("\nACTIVITIES:\n")
	writeAdvisorSection(&b, activityReply)

	b.WriteString("\nCOST BREAKDOWN:\n")
	fmt.Fprintf(&b, "   Flights:    $%d\n", result.FlightCost)
	fmt.Fprintf(&b, "   Hotels:     $%d\n", result.HotelCost)
	fmt.Fprintf(&b, "   Activities: $%d\n", result.ActivityCost)
	b.WriteString("   ----------------------\n")
	fmt.Fprintf(&b, "   Total:      $%d\n", result.TotalCost)
	fmt.Fprintf(&b, "   Remaining:  $%.0f\n", result.RemainingBudget)

	if result.WithinBudget {
		b.WriteString("\nTRIP FITS BUDGET!\n")
		fmt.Fprintf(&b, "Ready for your %d-night adventure!\n", req.Nights)
	} else {
		fmt.Fprintf(&b, "\nOver budget by $%.0f\n", -result.RemainingBudget)
		b.WriteString("Consider reducing accommodation or activities\n")
	}

	b.WriteString(divider + "\n")
	return b.String()
}

// writeAdvisorSection keeps only the lines of a reply that follow the expected
// layout, indenting the BEST CHOICE line for emphasis.
func writeAdvisorSection(b *strings.Builder, reply string) {
	for _, line := range splitTrimmedLines(reply) {
		if !containsAnyMarker(line) {
			continue
		}
		if strings.Contains(line, bestChoiceMarker) {
			fmt.Fprintf(b, "     %s\n", line)
		} else {
			fmt.Fprintf(b, "   %s\n", line)
		}
	}
}

func containsAnyMarker(line string) bool {
	for _, marker := range sectionMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
