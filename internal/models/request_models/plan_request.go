package request_models

type PlanTripRequest struct {
	Budget      float64 `json:"budget" binding:"required,gt=0" validate:"required,gt=0"`
	Origin      string  `json:"origin" binding:"required" validate:"required"`
	Destination string  `json:"destination" binding:"required" validate:"required"`
	Nights      int     `json:"nights" binding:"required,gt=0" validate:"required,gt=0"`
}
