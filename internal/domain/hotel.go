package domain

type Hotel struct {
	HotelID    string `json:"hotel_id"`
	Name       string `json:"name"`
	ProviderID *int   `json:"provider_id,omitempty"`
}
