package dto

type CreateReguRequest struct {
	ReguName         string `json:"regu_name" validate:"required,min=3,max=100"`
	ReguTargetAmount int64  `json:"regu_target_amount" validate:"omitempty,gte=0"`
}

type JoinReguRequest struct {
	JoinCode string `json:"join_code" validate:"required,len=6"`
}

type UpdateTargetRequest struct {
	ReguTargetAmount int64 `json:"regu_target_amount" validate:"required,gte=0"`
}

type SendChatRequest struct {
	ChatText string `json:"chat_text" validate:"required,min=1,max=2000"`
}
