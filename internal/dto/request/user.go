package request

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// UpdateProfileRequest carries a partial profile update. Empty fields are
// left untouched.
type UpdateProfileRequest struct {
	Name         string          `json:"name" validate:"omitempty,max=50"`
	Email        string          `json:"email" validate:"omitempty,email"`
	PhoneNumber  string          `json:"phoneNumber" validate:"omitempty,min=10,max=16"`
	Address      *AddressRequest `json:"address"`
	ProfileImage string          `json:"profileImage"`
}
