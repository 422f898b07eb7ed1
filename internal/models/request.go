package models

import "time"

// RequestStatus is the closed set of delivery-pipeline states.
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDING"
	StatusInProgress RequestStatus = "IN_PROGRESS"
	StatusCompleted  RequestStatus = "COMPLETED"
	StatusDelivered  RequestStatus = "DELIVERED"
	StatusCancelled  RequestStatus = "CANCELLED"
)

// Settable reports whether a status may be applied through the pipeline
// controls. COMPLETED and CANCELLED are part of the vocabulary but no
// mutation path produces them.
func (s RequestStatus) Settable() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered:
		return true
	}
	return false
}

// Request is one service order owned by exactly one Profile. It has no
// identity outside its parent's Requests sequence.
type Request struct {
	ID     string        `json:"id" bson:"id"`
	Date   time.Time     `json:"date" bson:"date"`
	Status RequestStatus `json:"status" bson:"status"`

	// PromoCode is the code USED for this request, distinct from the
	// owning profile's OwnPromoCode.
	PromoCode string `json:"promo_code" bson:"promo_code"`
	Details   string `json:"details" bson:"details"`
}
