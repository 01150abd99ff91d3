package reservation_actions

// ApproveRequest тело POST .../approve (опционально)
type ApproveRequest struct {
	DepositAmount *float64 `json:"depositAmount,omitempty"`
}

// RejectRequest тело POST .../reject (опционально)
type RejectRequest struct {
	RejectionReason *string `json:"rejectionReason,omitempty"`
}
