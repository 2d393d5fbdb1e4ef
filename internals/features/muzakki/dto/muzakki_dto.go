package dto

type CreateMuzakkiRequest struct {
	MuzakkiName  string `json:"muzakki_name" validate:"required,min=2,max=100"`  // Nama prospek
	MuzakkiPhone string `json:"muzakki_phone" validate:"omitempty,min=9,max=20"` // Nomor HP
	MuzakkiCity  string `json:"muzakki_city" validate:"omitempty,max=100"`
	MuzakkiNotes string `json:"muzakki_notes"`

	// Status bebas; default 'baru' bila kosong
	MuzakkiStatus string `json:"muzakki_status" validate:"omitempty,oneof=baru follow-up donasi"`
}

type UpdateMuzakkiRequest struct {
	MuzakkiName   *string `json:"muzakki_name" validate:"omitempty,min=2,max=100"`
	MuzakkiPhone  *string `json:"muzakki_phone" validate:"omitempty,min=9,max=20"`
	MuzakkiCity   *string `json:"muzakki_city" validate:"omitempty,max=100"`
	MuzakkiNotes  *string `json:"muzakki_notes"`
	MuzakkiStatus *string `json:"muzakki_status" validate:"omitempty,oneof=baru follow-up donasi"`
}

type CreateKomunikasiRequest struct {
	KomunikasiType string `json:"komunikasi_type" validate:"required,oneof=call whatsapp meeting"`
	KomunikasiNote string `json:"komunikasi_note" validate:"omitempty,max=2000"`
}
