package dto

type SendOtpRequest struct {
	Phone string `json:"phone" validate:"required,min=9,max=20"`
}

type LoginRequest struct {
	Phone string `json:"phone" validate:"required,min=9,max=20"`
	Otp   string `json:"otp" validate:"required,len=6,numeric"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Phone    string `json:"phone" validate:"required,min=9,max=20"`
	City     string `json:"city" validate:"omitempty,max=100"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
