package response

import "product-catalog/internal/data/entity"

type ProfileResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         string          `json:"role"`
	ProfileImage string          `json:"profileImage,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	Address      *entity.Address `json:"address,omitempty"`
	FullAddress  string          `json:"fullAddress,omitempty"`
}

type AdminUserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	LastLogin   string `json:"lastLogin,omitempty"`
}
