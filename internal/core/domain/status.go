package domain

// RequestStatus is the lifecycle status shared by leave, business-trip and
// grab-code requests.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// CanTransitionTo reports whether a request in the receiver status may move to
// next. Only PENDING requests transition; APPROVED, REJECTED and CANCELLED are
// terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s != StatusPending {
		return false
	}
	switch next {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	return s != StatusPending
}
