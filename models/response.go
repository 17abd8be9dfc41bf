package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type AuthErrorResponse struct {
	Errors string `json:"errors"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

type ProductNameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

type UploadResponse struct {
	Success  int    `json:"success"`
	ImageURL string `json:"image_url"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
