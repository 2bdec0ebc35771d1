package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates every index the data model relies on. It runs
// once at startup, before the server accepts connections, so the
// uniqueness guarantees (email, googleId, slugs, order numbers) hold
// from the first request onward. CreateMany is idempotent for
// identical definitions.
func EnsureIndexes(ctx context.Context, s *Store) error {
	for coll, indexes := range indexDefinitions() {
		if len(indexes) == 0 {
			continue
		}
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("store: create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

func indexDefinitions() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				// Sparse so users without a linked Google account do
				// not collide on the missing field.
				Keys:    bson.D{{Key: "googleId", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}}},
			{Keys: bson.D{
				{Key: "profile.firstName", Value: 1},
				{Key: "profile.lastName", Value: 1},
			}},
		},
		CollSellers: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "verification.status", Value: 1}}},
		},
		CollCategories: {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "parentCategory", Value: 1}}},
		},
		CollProducts: {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "variants.sku", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "seller", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "tags", Value: "text"},
			}},
			{Keys: bson.D{{Key: "ratings.averageRating", Value: -1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollCarts: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
			{
				Keys:    bson.D{{Key: "expiresAt", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		},
		CollOrders: {
			{
				Keys:    bson.D{{Key: "orderNumber", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "buyer", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "items.seller", Value: 1}}},
		},
		CollReviews: {
			{Keys: bson.D{{Key: "product", Value: 1}}},
			{Keys: bson.D{{Key: "buyer", Value: 1}}},
			{Keys: bson.D{{Key: "seller", Value: 1}}},
			{Keys: bson.D{{Key: "rating", Value: -1}}},
		},
		CollCoupons: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollWishlists: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		CollNotifications: {
			{Keys: bson.D{
				{Key: "recipient", Value: 1},
				{Key: "isRead", Value: 1},
			}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollPayments: {
			{Keys: bson.D{{Key: "order", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollShipments: {
			{Keys: bson.D{{Key: "order", Value: 1}}},
			{Keys: bson.D{{Key: "trackingNumber", Value: 1}}},
		},
		CollAdminLogs: {
			{Keys: bson.D{{Key: "admin", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
}
