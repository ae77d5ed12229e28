package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babycare/store-api/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository stores open-schema order documents.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

// Insert persists the document exactly as submitted.
func (r *OrderRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &domain.InsertResult{InsertedID: insertedIDHex(res.InsertedID)}, nil
}

// FindAll returns every order in natural storage order.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var docs []domain.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return docs, nil
}

// UpdateStatus sets the status field on the order with the given id. A zero
// MatchedCount in the result means the order did not exist.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return &domain.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
