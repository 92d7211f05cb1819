package services

import "optiqa/internal/models/response_models"

// mockOpticians is shown with the booking confirmation. Distances are fixed;
// there is no geolocation behind this.
var mockOpticians = []response_models.Optician{
	{
		Name:      "Optica Nova",
		Distance:  "550m",
		Specialty: "Fast service & great progressive lens fittings",
		Phone:     "+34 912 345 678",
		Address:   "Calle Gran Via 45, Madrid",
	},
	{
		Name:      "CentroVisión",
		Distance:  "1.1km",
		Specialty: "Specialists in sports and sunglasses",
		Phone:     "+34 912 345 679",
		Address:   "Plaza Mayor 12, Madrid",
	},
	{
		Name:      "Óptica Bassol",
		Distance:  "2.3km",
		Specialty: "Premium frames & lens upgrade support",
		Phone:     "+34 912 345 680",
		Address:   "Paseo de la Castellana 89, Madrid",
	},
}

func Opticians() []response_models.Optician {
	return mockOpticians
}
