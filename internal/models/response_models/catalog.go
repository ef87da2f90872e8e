package response_models

type FlightOption struct {
	Airline  string `json:"airline"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Stops    string `json:"stops"`
}

type HotelOption struct {
	Name          string  `json:"name"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Location      string  `json:"location"`
}

type ActivityOption struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}
