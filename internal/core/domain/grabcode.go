package domain

import "time"

// GrabCodeRequest is an employee's request for a transport voucher code.
// On approval a code is generated and stored on the request.
type GrabCodeRequest struct {
	RequestID       string        `json:"requestID"`
	EmployeeID      string        `json:"employeeID"`
	ServiceID       string        `json:"serviceID"`
	TravelDate      time.Time     `json:"travelDate"`
	PickupLocation  string        `json:"pickupLocation"`
	Destination     string        `json:"destination"`
	Purpose         string        `json:"purpose"`
	Status          RequestStatus `json:"status"`
	ApproverID      *string       `json:"approverID,omitempty"`
	RejectionReason *string       `json:"rejectionReason,omitempty"`
	Code            *string       `json:"code,omitempty"` // set when approved
	AuditFields
}
