package domain

type Animator struct {
	AnimatorID  string `json:"animator_id"`
	HotelID     string `json:"hotel_id"`
	DisplayName string `json:"display_name"`
	SecretHash  string `json:"-"`
}
