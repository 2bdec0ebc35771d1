package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shipment transit states.
const (
	ShipmentStatusPending        = "pending"
	ShipmentStatusPickedUp       = "picked_up"
	ShipmentStatusInTransit      = "in_transit"
	ShipmentStatusOutForDelivery = "out_for_delivery"
	ShipmentStatusDelivered      = "delivered"
	ShipmentStatusFailed         = "failed"
)

// TrackingEvent is one carrier scan in a shipment's history.
type TrackingEvent struct {
	Status      string    `bson:"status,omitempty" json:"status,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Timestamp   time.Time `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

type Shipment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order             primitive.ObjectID `bson:"order" json:"order"`
	Carrier           string             `bson:"carrier" json:"carrier"`
	TrackingNumber    string             `bson:"trackingNumber" json:"trackingNumber"`
	Status            string             `bson:"status" json:"status"`
	TrackingEvents    []TrackingEvent    `bson:"trackingEvents,omitempty" json:"trackingEvents,omitempty"`
	EstimatedDelivery time.Time          `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	ActualDelivery    time.Time          `bson:"actualDelivery,omitempty" json:"actualDelivery,omitempty"`
	ShippingCost      float64            `bson:"shippingCost,omitempty" json:"shippingCost,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
