package models

import "time"

// SwapRequestStatus represents the lifecycle state of a swap request.
type SwapRequestStatus string

const (
	// SwapStatusPending indicates a request awaiting the receiver's decision.
	SwapStatusPending SwapRequestStatus = "pending"
	// SwapStatusAccepted indicates the receiver accepted the request.
	SwapStatusAccepted SwapRequestStatus = "accepted"
	// SwapStatusRejected indicates the receiver rejected the request.
	SwapStatusRejected SwapRequestStatus = "rejected"
)

// SwapAction is a receiver-initiated mutation of a swap request.
type SwapAction string

const (
	// SwapActionAccept transitions a pending request to accepted.
	SwapActionAccept SwapAction = "accept"
	// SwapActionReject transitions a pending request to rejected.
	SwapActionReject SwapAction = "reject"
	// SwapActionDelete removes the request row permanently.
	SwapActionDelete SwapAction = "delete"
)

// SwapRequest represents a sender's offer to exchange a skill with a receiver.
// Accept and reject are terminal; delete is a hard removal, not a stored state.
type SwapRequest struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	SenderID   uint              `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint              `gorm:"not null;index" json:"receiver_id"`
	Skill      string            `json:"skill"`
	Status     SwapRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IncomingSwapRow is a receiver's inbox row joined with the sender's name.
type IncomingSwapRow struct {
	RequestID  uint              `json:"request_id"`
	SenderID   uint              `json:"sender_id"`
	SenderName string            `json:"sender_name"`
	Skill      string            `json:"skill"`
	Status     SwapRequestStatus `json:"status"`
}
