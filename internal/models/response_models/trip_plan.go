package response_models

type TripPlanResult struct {
	TotalCost              int     `json:"total_cost"`
	RemainingBudget        float64 `json:"remaining_budget"`
	WithinBudget           bool    `json:"within_budget"`
	FlightCost             int     `json:"flight_cost"`
	HotelCost              int     `json:"hotel_cost"`
	ActivityCost           int     `json:"activity_cost"`
	FlightRecommendation   string  `json:"flight_recommendation"`
	HotelRecommendation    string  `json:"hotel_recommendation"`
	ActivityRecommendation string  `json:"activity_recommendation"`
	Summary                string  `json:"summary"`
}
