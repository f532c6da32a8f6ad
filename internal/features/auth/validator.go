package auth

import (
	"errors"

	"github.com/hamzarauf/linkora/internal/pkg/validator"
)

// ValidateRegister checks the register payload beyond binding tags
func ValidateRegister(req *RegisterRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if !validator.IsStrongPassword(req.Password) {
		return errors.New("password must be at least 8 characters with upper, lower and digit")
	}
	if !validator.IsValidName(req.Name) {
		return errors.New("invalid name")
	}
	return nil
}

// ValidateLogin checks the login payload beyond binding tags
func ValidateLogin(req *LoginRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// ValidateProfileUpdate checks the profile update payload
func ValidateProfileUpdate(req *UpdateProfileRequest) error {
	if req.Name != nil && !validator.IsValidName(*req.Name) {
		return errors.New("invalid name")
	}
	if req.LinkedinURL != nil && *req.LinkedinURL != "" && !validator.IsValidURL(*req.LinkedinURL) {
		return errors.New("invalid linkedin url")
	}
	return nil
}
