package dto

type CreateDonationRequest struct {
	DonationAmount   int    `json:"donation_amount" form:"donation_amount" validate:"required,gt=0"`
	DonationCategory string `json:"donation_category" form:"donation_category" validate:"required,oneof=zakat infaq sedekah wakaf"`
	DonationType     string `json:"donation_type" form:"donation_type" validate:"omitempty,oneof=incoming outgoing"`
	DonationNote     string `json:"donation_note" form:"donation_note"`

	// 🔗 Muzakki terkait (opsional)
	DonationMuzakkiID string `json:"donation_muzakki_id" form:"donation_muzakki_id" validate:"omitempty,uuid"`
}

type RejectDonationRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type CreateOnlineDonationRequest struct {
	DonationName     string `json:"donation_name" validate:"required,min=2,max=100"` // Nama pendonor
	DonationEmail    string `json:"donation_email" validate:"required,email"`
	DonationAmount   int    `json:"donation_amount" validate:"required,gt=0"`
	DonationCategory string `json:"donation_category" validate:"required,oneof=zakat infaq sedekah wakaf"`
	DonationNote     string `json:"donation_note"`

	DonationMuzakkiID string `json:"donation_muzakki_id" validate:"omitempty,uuid"`
}
