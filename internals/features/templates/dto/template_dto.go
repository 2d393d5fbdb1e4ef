package dto

import "gorm.io/datatypes"

type CreateTemplateRequest struct {
	TemplateTitle     string   `json:"template_title" validate:"required,min=3,max=100"`
	TemplateBody      string   `json:"template_body" validate:"required,min=3"`
	TemplateVariables []string `json:"template_variables" validate:"omitempty,dive,min=1,max=50"`
	TemplateCategory  string   `json:"template_category" validate:"omitempty,max=50"`
}

type UpdateTemplateRequest struct {
	TemplateTitle     string   `json:"template_title" validate:"omitempty,min=3,max=100"`
	TemplateBody      string   `json:"template_body" validate:"omitempty,min=3"`
	TemplateVariables []string `json:"template_variables" validate:"omitempty,dive,min=1,max=50"`
	TemplateCategory  string   `json:"template_category" validate:"omitempty,max=50"`
}

type CreateProgramRequest struct {
	ProgramName        string         `json:"program_name" validate:"required,min=3,max=100"`
	ProgramDescription string         `json:"program_description"`
	ProgramCategory    string         `json:"program_category" validate:"omitempty,max=50"`
	ProgramMetadata    datatypes.JSON `json:"program_metadata"`
}

type UpdateProgramRequest struct {
	ProgramName        string         `json:"program_name" validate:"omitempty,min=3,max=100"`
	ProgramDescription *string        `json:"program_description"`
	ProgramCategory    *string        `json:"program_category" validate:"omitempty,max=50"`
	ProgramIsActive    *bool          `json:"program_is_active"`
	ProgramMetadata    datatypes.JSON `json:"program_metadata"`
}
