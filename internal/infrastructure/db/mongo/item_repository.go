package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anylist/anylist-api/internal/core/domain"
	"github.com/anylist/anylist-api/internal/core/ports"
)

const itemCollection = "items"

// ItemRepository persists items in MongoDB. Every single-item query filters
// on both id and owner, so another user's item is indistinguishable from a
// missing one.
type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(itemCollection)}
}

// EnsureIndexes creates the owner index used by every listing.
func (r *ItemRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create owner index: %w", err)
	}
	return nil
}

type itemDoc struct {
	ID            string  `bson:"_id"`
	Name          string  `bson:"name"`
	QuantityUnits *string `bson:"quantity_units,omitempty"`
	OwnerID       string  `bson:"owner_id"`
	CreatedAt     int64   `bson:"created_at"`
	UpdatedAt     int64   `bson:"updated_at"`
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if _, err := r.coll.InsertOne(ctx, toItemDoc(item)); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	var doc itemDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return fromItemDoc(doc), nil
}

func (r *ItemRepository) FindAllByOwner(ctx context.Context, ownerID string, filter ports.ItemFilter) ([]*domain.Item, error) {
	query := bson.M{"owner_id": ownerID}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Search, Options: "i"}}
	}

	opts := options.Find().
		SetSkip(int64(filter.Offset)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Item
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, fromItemDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return int(n), nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID, "owner_id": item.OwnerID}, toItemDoc(item))
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	return nil
}

func toItemDoc(i *domain.Item) itemDoc {
	return itemDoc{
		ID:            i.ID,
		Name:          i.Name,
		QuantityUnits: i.QuantityUnits,
		OwnerID:       i.OwnerID,
		CreatedAt:     i.CreatedAt.Unix(),
		UpdatedAt:     i.UpdatedAt.Unix(),
	}
}

func fromItemDoc(doc itemDoc) *domain.Item {
	return &domain.Item{
		ID:            doc.ID,
		Name:          doc.Name,
		QuantityUnits: doc.QuantityUnits,
		OwnerID:       doc.OwnerID,
		CreatedAt:     unixToTime(doc.CreatedAt),
		UpdatedAt:     unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
