package db_models

type Flight struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Origin      string `gorm:"index:idx_flight_route" json:"origin"`
	Destination string `gorm:"index:idx_flight_route" json:"destination"`
	Airline     string `json:"airline"`
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
	Stops       string `json:"stops"`
}

type Hotel struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	Destination   string  `gorm:"index" json:"destination"`
	Name          string  `json:"name"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Location      string  `json:"location"`
}

type Activity struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Destination string `gorm:"index" json:"destination"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
}
