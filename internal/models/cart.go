package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartTTL is how long an untouched cart lives before the TTL index
// removes it.
const CartTTL = 30 * 24 * time.Hour

// CartItem snapshots a product at the moment it was added; Price is the
// price at add time, not the current listing price.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Variant  string             `bson:"variant,omitempty" json:"variant,omitempty"`
	Quantity int64              `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	Seller   primitive.ObjectID `bson:"seller" json:"seller"`
}

type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Items       []CartItem         `bson:"items,omitempty" json:"items,omitempty"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
