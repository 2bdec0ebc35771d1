package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BusinessTypeIndividual = "individual"
	BusinessTypeCompany    = "company"
)

// Seller verification states.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// BusinessAddress is the registered address of a seller's business.
type BusinessAddress struct {
	AddressLine1 string `bson:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode   string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country      string `bson:"country,omitempty" json:"country,omitempty"`
}

type BusinessInfo struct {
	BusinessType               string          `bson:"businessType" json:"businessType"`
	BusinessRegistrationNumber string          `bson:"businessRegistrationNumber,omitempty" json:"businessRegistrationNumber,omitempty"`
	TaxID                      string          `bson:"taxId,omitempty" json:"taxId,omitempty"`
	BusinessAddress            BusinessAddress `bson:"businessAddress,omitempty" json:"businessAddress,omitempty"`
}

type BankInfo struct {
	BankName          string `bson:"bankName,omitempty" json:"bankName,omitempty"`
	AccountNumber     string `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	AccountHolderName string `bson:"accountHolderName,omitempty" json:"accountHolderName,omitempty"`
	RoutingNumber     string `bson:"routingNumber,omitempty" json:"routingNumber,omitempty"`
}

type SellerVerification struct {
	Status          string    `bson:"status" json:"status"`
	VerifiedAt      time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	RejectionReason string    `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

// Ratings aggregates review scores for a seller or a product.
type Ratings struct {
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	TotalReviews  int64   `bson:"totalReviews" json:"totalReviews"`
}

type SellerStatistics struct {
	TotalProducts int64   `bson:"totalProducts" json:"totalProducts"`
	TotalSales    int64   `bson:"totalSales" json:"totalSales"`
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
}

// Seller is the shop-facing extension of a user account.
type Seller struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	ShopName        string             `bson:"shopName" json:"shopName"`
	ShopDescription string             `bson:"shopDescription,omitempty" json:"shopDescription,omitempty"`
	ShopLogo        string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
	ShopBanner      string             `bson:"shopBanner,omitempty" json:"shopBanner,omitempty"`
	BusinessInfo    BusinessInfo       `bson:"businessInfo" json:"businessInfo"`
	BankInfo        BankInfo           `bson:"bankInfo,omitempty" json:"bankInfo,omitempty"`
	Verification    SellerVerification `bson:"verification" json:"verification"`
	Ratings         Ratings            `bson:"ratings" json:"ratings"`
	Statistics      SellerStatistics   `bson:"statistics" json:"statistics"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
