package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "ziswaf_backend/internals/features/users/user/model"
)

type UserResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	City      string     `json:"city"`
	Role      string     `json:"role"`
	ReguID    *uuid.UUID `json:"regu_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		FullName:  u.FullName,
		Phone:     u.Phone,
		City:      u.City,
		Role:      u.Role,
		ReguID:    u.ReguID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	City     *string `json:"city" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=relawan pembimbing admin"`
}
