package domain

// Service is a transport service offered to employees, referenced by
// grab-code requests (e.g. a ride-hailing account or shuttle provider).
type Service struct {
	ServiceID string `json:"serviceID"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
