package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment states as reported by the gateway.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order           primitive.ObjectID `bson:"order" json:"order"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentGateway  string             `bson:"paymentGateway,omitempty" json:"paymentGateway,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	GatewayResponse bson.M             `bson:"gatewayResponse,omitempty" json:"gatewayResponse,omitempty"`
	Amount          float64            `bson:"amount" json:"amount"`
	Currency        string             `bson:"currency" json:"currency"`
	Status          string             `bson:"status" json:"status"`
	PaidAt          time.Time          `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	RefundedAt      time.Time          `bson:"refundedAt,omitempty" json:"refundedAt,omitempty"`
	RefundAmount    float64            `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
