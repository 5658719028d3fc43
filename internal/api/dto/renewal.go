package dto

type PermitRecord struct {
	PermitID   string `json:"permit_id"`
	Region     string `json:"region"`
	Expiration string `json:"expiration"` // YYYY-MM-DD
}

type RenewalCheckRequest struct {
	Permits []PermitRecord `json:"permits"`
	AsOf    string         `json:"as_of,omitempty"` // YYYY-MM-DD, defaults to today
}

type RenewalAlertResponse struct {
	PermitID      string `json:"permit_id"`
	Region        string `json:"region"`
	DaysRemaining int    `json:"days_remaining"`
	Urgency       string `json:"urgency"`
}

type RenewalCheckResponse struct {
	Alerts []RenewalAlertResponse `json:"alerts"`
}
