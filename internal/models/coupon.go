package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon codes are stored uppercased; Code uniqueness is enforced by
// the coupons collection index.
type Coupon struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Code                 string               `bson:"code" json:"code"`
	Name                 string               `bson:"name" json:"name"`
	Description          string               `bson:"description,omitempty" json:"description,omitempty"`
	DiscountType         string               `bson:"discountType" json:"discountType"`
	DiscountValue        float64              `bson:"discountValue" json:"discountValue"`
	MaxDiscountAmount    float64              `bson:"maxDiscountAmount,omitempty" json:"maxDiscountAmount,omitempty"`
	MinOrderAmount       float64              `bson:"minOrderAmount" json:"minOrderAmount"`
	UsageLimit           int64                `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsageLimitPerUser    int64                `bson:"usageLimitPerUser" json:"usageLimitPerUser"`
	UsedCount            int64                `bson:"usedCount" json:"usedCount"`
	StartDate            time.Time            `bson:"startDate" json:"startDate"`
	EndDate              time.Time            `bson:"endDate" json:"endDate"`
	ApplicableProducts   []primitive.ObjectID `bson:"applicableProducts,omitempty" json:"applicableProducts,omitempty"`
	ApplicableCategories []primitive.ObjectID `bson:"applicableCategories,omitempty" json:"applicableCategories,omitempty"`
	ApplicableSellers    []primitive.ObjectID `bson:"applicableSellers,omitempty" json:"applicableSellers,omitempty"`
	IsActive             bool                 `bson:"isActive" json:"isActive"`
	CreatedBy            primitive.ObjectID   `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}
