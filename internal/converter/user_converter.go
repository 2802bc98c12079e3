package converter

import (
	"medecos/internal/delivery/dto"
	"medecos/internal/domain/entity"
)

// UserToInfo converts a User entity to the compact UserInfo DTO returned
// by the auth endpoints.
func UserToInfo(user *entity.User) *dto.UserInfo {
	if user == nil {
		return nil
	}

	return &dto.UserInfo{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: string(user.Role),
	}
}

// UserToSummary converts a User entity to the embedded summary used by
// profile and record responses.
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}

	return &dto.UserSummary{
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
	}
}
