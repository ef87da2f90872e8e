package services

import (
	"regexp"
	"strconv"
	"strings"
)

type Category string

const (
	CategoryFlight   Category = "flight"
	CategoryHotel    Category = "hotel"
	CategoryActivity Category = "activity"
)

// Recommendation is the structured outcome of one advisory reply.
type Recommendation struct {
	Cost    int
	Details string
}

const (
	bestChoiceMarker      = "BEST CHOICE:"
	totalActivitiesMarker = "TOTAL ACTIVITIES:"
	noDetailsSentinel     = "No details available"
	activityPlanDetails   = "Activity plan created"
)

var (
	priceRe      = regexp.MustCompile(`\$(\d+)`)
	hotelTotalRe = regexp.MustCompile(`nights = \$(\d+)`)
)

// ExtractRecommendation recovers the recommended option and its cost from one
// free-form advisory reply. The reply layout is advisory only, so every miss
// (no BEST CHOICE line, no matching priced line, unparsable amount) degrades to
// the zero-cost sentinel instead of failing; a malformed reply must never abort
// the planning run.
func ExtractRecommendation(reply string, category Category, nights int) Recommendation {
	sentinel := Recommendation{Cost: 0, Details: noDetailsSentinel}

	lines := splitTrimmedLines(reply)
	if len(lines) == 0 {
		return sentinel
	}

	// Find the recommended option
	recommendation := ""
	for _, line := range lines {
		if strings.HasPrefix(line, bestChoiceMarker) {
			recommendation = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, bestChoiceMarker)))
			break
		}
	}

	switch category {
	case CategoryFlight:
		return extractFlightCost(lines, recommendation, sentinel)
	case CategoryHotel:
		return extractHotelCost(lines, recommendation, nights, sentinel)
	case CategoryActivity:
		return extractActivityCost(lines, sentinel)
	}

	return sentinel
}

func splitTrimmedLines(reply string) []string {
	var lines []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func extractFlightCost(lines []string, recommendation string, sentinel Recommendation) Recommendation {
	// An empty label would match every line; without BEST CHOICE there is
	// nothing to extract.
	if recommendation == "" {
		return sentinel
	}

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), recommendation) || !strings.Contains(line, "$") {
			continue
		}
		if match := priceRe.FindStringSubmatch(line); match != nil {
			cost, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			return Recommendation{Cost: cost, Details: line}
		}
	}

	return sentinel
}

func extractHotelCost(lines []string, recommendation string, nights int, sentinel Recommendation) Recommendation {
	if recommendation == "" {
		return sentinel
	}

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), recommendation) || !strings.Contains(line, "$") {
			continue
		}

		// Prefer the pre-computed multi-night total over the per-night rate
		if match := hotelTotalRe.FindStringSubmatch(line); match != nil {
			if cost, err := strconv.Atoi(match[1]); err == nil {
				return Recommendation{Cost: cost, Details: line}
			}
		}
		if match := priceRe.FindStringSubmatch(line); match != nil {
			if perNight, err := strconv.Atoi(match[1]); err == nil {
				return Recommendation{Cost: perNight * nights, Details: line}
			}
		}

		return sentinel
	}

	return sentinel
}

func extractActivityCost(lines []string, sentinel Recommendation) Recommendation {
	for _, line := range lines {
		if !strings.HasPrefix(line, totalActivitiesMarker) {
			continue
		}
		if match := priceRe.FindStringSubmatch(line); match != nil {
			if cost, err := strconv.Atoi(match[1]); err == nil {
				return Recommendation{Cost: cost, Details: activityPlanDetails}
			}
		}
	}

	return sentinel
}
