package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle states.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Payment states as tracked on the order itself.
const (
	OrderPaymentPending  = "pending"
	OrderPaymentPaid     = "paid"
	OrderPaymentFailed   = "failed"
	OrderPaymentRefunded = "refunded"
)

// OrderItem snapshots the purchased product so later catalog edits do
// not rewrite order history.
type OrderItem struct {
	Product     primitive.ObjectID `bson:"product" json:"product"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Variant     string             `bson:"variant,omitempty" json:"variant,omitempty"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	UnitPrice   float64            `bson:"unitPrice" json:"unitPrice"`
	TotalPrice  float64            `bson:"totalPrice" json:"totalPrice"`
	Seller      primitive.ObjectID `bson:"seller" json:"seller"`
}

// ShippingAddress is the delivery address frozen into the order.
type ShippingAddress struct {
	FullName     string `bson:"fullName" json:"fullName"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postalCode" json:"postalCode"`
	Country      string `bson:"country" json:"country"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	Buyer           primitive.ObjectID `bson:"buyer" json:"buyer"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	TaxAmount       float64            `bson:"taxAmount" json:"taxAmount"`
	ShippingCost    float64            `bson:"shippingCost" json:"shippingCost"`
	DiscountAmount  float64            `bson:"discountAmount" json:"discountAmount"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	Status          string             `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	TrackingNumber  string             `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	Carrier         string             `bson:"carrier,omitempty" json:"carrier,omitempty"`
	ConfirmedAt     time.Time          `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	ShippedAt       time.Time          `bson:"shippedAt,omitempty" json:"shippedAt,omitempty"`
	DeliveredAt     time.Time          `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CancelledAt     time.Time          `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	BuyerNotes      string             `bson:"buyerNotes,omitempty" json:"buyerNotes,omitempty"`
	AdminNotes      string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CouponUsed      primitive.ObjectID `bson:"couponUsed,omitempty" json:"couponUsed,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
