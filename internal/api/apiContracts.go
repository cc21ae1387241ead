package api

import "github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"

// requests---------------------

type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateFieldsRequest struct {
	DocType        string            `json:"doc_type" validate:"required" example:"aadhar"`
	FieldsToUpdate map[string]string `json:"fields_to_update" validate:"required"`
}

// responses--------------------

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid file format"`
}

type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

type AuthResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

type ProfileResponse struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

type UploadResponse struct {
	Message string                  `json:"message"`
	Data    docModel.DocumentRecord `json:"data"`
}

// ConflictResponse asks the caller to choose which of the fixed updatable
// fields to overwrite.
type ConflictResponse struct {
	Message        string                  `json:"message"`
	ExistingData   docModel.DocumentRecord `json:"existing_data"`
	NewData        docModel.DocumentRecord `json:"new_data"`
	FieldsToUpdate []string                `json:"fields_to_update"`
}
