package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a node in the product category tree. Level 0 is a root
// category; children reference their parent and carry level+1.
type Category struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug" json:"slug"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	ParentCategory primitive.ObjectID `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	Level          int                `bson:"level" json:"level"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	SortOrder      int                `bson:"sortOrder" json:"sortOrder"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
