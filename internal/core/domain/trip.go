package domain

import "time"

// BusinessTrip is an employee's request to travel on company business.
// Unlike leave and grab-code requests, a pending trip may also be cancelled
// by the requesting employee.
type BusinessTrip struct {
	TripID          string        `json:"tripID"`
	EmployeeID      string        `json:"employeeID"`
	Destination     string        `json:"destination"`
	Purpose         string        `json:"purpose"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	Status          RequestStatus `json:"status"`
	ApproverID      *string       `json:"approverID,omitempty"`
	RejectionReason *string       `json:"rejectionReason,omitempty"`
	Events          []TripEvent   `json:"events,omitempty"`
	Participants    []string      `json:"participants,omitempty"` // EmployeeIDs
	AuditFields
}

// TripEvent is a scheduled item within a business trip.
type TripEvent struct {
	EventID string    `json:"eventID"`
	TripID  string    `json:"tripID"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
}
