package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lifecycle states.
const (
	ProductStatusDraft      = "draft"
	ProductStatusActive     = "active"
	ProductStatusInactive   = "inactive"
	ProductStatusOutOfStock = "out_of_stock"
)

type Dimensions struct {
	Length float64 `bson:"length,omitempty" json:"length,omitempty"`
	Width  float64 `bson:"width,omitempty" json:"width,omitempty"`
	Height float64 `bson:"height,omitempty" json:"height,omitempty"`
}

// VariantAttribute is a single name/value pair such as Color=Red.
type VariantAttribute struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

// Variant is a purchasable configuration of a product (size, color, ...).
type Variant struct {
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	SKU          string             `bson:"sku" json:"sku"`
	Price        float64            `bson:"price" json:"price"`
	ComparePrice float64            `bson:"comparePrice,omitempty" json:"comparePrice,omitempty"`
	Stock        int64              `bson:"stock" json:"stock"`
	Attributes   []VariantAttribute `bson:"attributes,omitempty" json:"attributes,omitempty"`
	Images       []string           `bson:"images,omitempty" json:"images,omitempty"`
	Weight       float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Dimensions   Dimensions         `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
}

type ProductShipping struct {
	Weight       float64    `bson:"weight,omitempty" json:"weight,omitempty"`
	Dimensions   Dimensions `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	FreeShipping bool       `bson:"freeShipping" json:"freeShipping"`
	ShippingCost float64    `bson:"shippingCost" json:"shippingCost"`
}

type Product struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	Slug             string               `bson:"slug" json:"slug"`
	Description      string               `bson:"description" json:"description"`
	ShortDescription string               `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Seller           primitive.ObjectID   `bson:"seller" json:"seller"`
	Category         primitive.ObjectID   `bson:"category" json:"category"`
	Subcategories    []primitive.ObjectID `bson:"subcategories,omitempty" json:"subcategories,omitempty"`
	Variants         []Variant            `bson:"variants,omitempty" json:"variants,omitempty"`
	BasePrice        float64              `bson:"basePrice,omitempty" json:"basePrice,omitempty"`
	BaseStock        int64                `bson:"baseStock" json:"baseStock"`
	Images           []string             `bson:"images,omitempty" json:"images,omitempty"`
	Tags             []string             `bson:"tags,omitempty" json:"tags,omitempty"`
	MetaTitle        string               `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription  string               `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Status           string               `bson:"status" json:"status"`
	Ratings          Ratings              `bson:"ratings" json:"ratings"`
	ViewCount        int64                `bson:"viewCount" json:"viewCount"`
	SalesCount       int64                `bson:"salesCount" json:"salesCount"`
	Shipping         ProductShipping      `bson:"shipping,omitempty" json:"shipping,omitempty"`
	IsActive         bool                 `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}
