package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerResponse is an optional reply a seller leaves under a review.
type SellerResponse struct {
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	RespondedAt time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

type Review struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order              primitive.ObjectID `bson:"order" json:"order"`
	Product            primitive.ObjectID `bson:"product" json:"product"`
	Buyer              primitive.ObjectID `bson:"buyer" json:"buyer"`
	Seller             primitive.ObjectID `bson:"seller" json:"seller"`
	Rating             int                `bson:"rating" json:"rating"`
	Title              string             `bson:"title,omitempty" json:"title,omitempty"`
	Comment            string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Images             []string           `bson:"images,omitempty" json:"images,omitempty"`
	IsVerifiedPurchase bool               `bson:"isVerifiedPurchase" json:"isVerifiedPurchase"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	SellerResponse     SellerResponse     `bson:"sellerResponse,omitempty" json:"sellerResponse,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
