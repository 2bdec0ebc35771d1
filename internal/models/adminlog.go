package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminLog records one moderation or back-office action for audit.
type AdminLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Admin      primitive.ObjectID `bson:"admin" json:"admin"`
	Action     string             `bson:"action" json:"action"`
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID primitive.ObjectID `bson:"resourceId,omitempty" json:"resourceId,omitempty"`
	Details    bson.M             `bson:"details,omitempty" json:"details,omitempty"`
	IPAddress  string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
