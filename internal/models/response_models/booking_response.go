package response_models

// CalendarDay is one bookable business day.
type CalendarDay struct {
	Date    string `json:"date"`  // "2006-01-02"
	Label   string `json:"label"` // "Tue, Sep 1"
	Weekday string `json:"weekday"`
}

// TimeSlot is one hourly slot of a day. IsBooked is cosmetic availability.
type TimeSlot struct {
	Time     string `json:"time"` // "10 AM"
	StartsAt string `json:"starts_at"`
	IsBooked bool   `json:"is_booked"`
}

// Optician is a nearby store shown with the booking confirmation. Distances
// are hardcoded; this is not a geolocation feature.
type Optician struct {
	Name      string `json:"name"`
	Distance  string `json:"distance"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// BookingConfirmation is the post-booking view model. Date and Time repeat
// the selected slot's labels verbatim.
type BookingConfirmation struct {
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	StartsAt  string     `json:"starts_at"`
	ZipCode   string     `json:"zip_code"`
	Opticians []Optician `json:"opticians"`
}
