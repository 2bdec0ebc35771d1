package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, one per entity in the data model.
const (
	CollUsers         = "users"
	CollSellers       = "sellers"
	CollCategories    = "categories"
	CollProducts      = "products"
	CollCarts         = "carts"
	CollOrders        = "orders"
	CollReviews       = "reviews"
	CollCoupons       = "coupons"
	CollWishlists     = "wishlists"
	CollNotifications = "notifications"
	CollPayments      = "payments"
	CollShipments     = "shipments"
	CollAdminLogs     = "admin_logs"
)

// Store wraps the Mongo client and exposes typed collection handles.
// Cross-collection transactions are not used; each write relies on
// single-document atomicity.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a Mongo client and verifies connectivity with a ping.
// A dead store at startup is fatal to the caller.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Database returns the underlying database handle.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Users() *mongo.Collection         { return s.db.Collection(CollUsers) }
func (s *Store) Sellers() *mongo.Collection       { return s.db.Collection(CollSellers) }
func (s *Store) Categories() *mongo.Collection    { return s.db.Collection(CollCategories) }
func (s *Store) Products() *mongo.Collection      { return s.db.Collection(CollProducts) }
func (s *Store) Carts() *mongo.Collection         { return s.db.Collection(CollCarts) }
func (s *Store) Orders() *mongo.Collection        { return s.db.Collection(CollOrders) }
func (s *Store) Reviews() *mongo.Collection       { return s.db.Collection(CollReviews) }
func (s *Store) Coupons() *mongo.Collection       { return s.db.Collection(CollCoupons) }
func (s *Store) Wishlists() *mongo.Collection     { return s.db.Collection(CollWishlists) }
func (s *Store) Notifications() *mongo.Collection { return s.db.Collection(CollNotifications) }
func (s *Store) Payments() *mongo.Collection      { return s.db.Collection(CollPayments) }
func (s *Store) Shipments() *mongo.Collection     { return s.db.Collection(CollShipments) }
func (s *Store) AdminLogs() *mongo.Collection     { return s.db.Collection(CollAdminLogs) }
