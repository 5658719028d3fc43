package dto

type PermitSubmissionRequest struct {
	CarrierID  string            `json:"carrier_id"`
	Region     string            `json:"region"`
	Dimensions DimensionsRequest `json:"dimensions"`
}

type PermitSubmissionResponse struct {
	Region         string `json:"region"`
	PermitType     string `json:"permit_type"`
	Submitted      bool   `json:"submitted"`
	ConfirmationID string `json:"confirmation_id,omitempty"`
	Status         string `json:"status,omitempty"`
	EstimatedHours int    `json:"estimated_hours,omitempty"`
	Message        string `json:"message,omitempty"`
}
