package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"silentblock/internal/domain/entity"
	"silentblock/internal/domain/repository"
	appErrors "silentblock/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blockRepository struct {
	coll *mongo.Collection
}

// NewBlockRepository creates a new instance of BlockRepository backed by MongoDB.
func NewBlockRepository(db *mongo.Database) repository.BlockRepository {
	return &blockRepository{coll: db.Collection(entity.Block{}.CollectionName())}
}

// Create persists a new block and returns its generated ObjectID in hex form.
func (r *blockRepository) Create(ctx context.Context, block *entity.Block) (string, error) {
	res, err := r.coll.InsertOne(ctx, block)
	if err != nil {
		return "", fmt.Errorf("failed to create block for user %s: %w", block.UserID, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID retrieves a block by its hex ObjectID.
func (r *blockRepository) FindByID(ctx context.Context, id string) (*entity.Block, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", appErrors.ErrBlockNotFound, id)
	}
	var block entity.Block
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&block); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", appErrors.ErrBlockNotFound, id)
		}
		return nil, fmt.Errorf("failed to find block %s: %w", id, err)
	}
	return &block, nil
}

// FindByUserID retrieves all blocks for a user, ordered by start time ascending.
// An empty userID matches only documents whose user_id is the empty string.
func (r *blockRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Block, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find blocks for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	blocks := []*entity.Block{}
	if err := cur.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks for user %s: %w", userID, err)
	}
	return blocks, nil
}

// FindDue retrieves un-notified blocks whose start time is at or before the
// given time, ordered by start time ascending.
func (r *blockRepository) FindDue(ctx context.Context, before time.Time) ([]*entity.Block, error) {
	filter := bson.M{
		"notified":   false,
		"start_time": bson.M{"$lte": before},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find due blocks: %w", err)
	}
	defer cur.Close(ctx)

	blocks := []*entity.Block{}
	if err := cur.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode due blocks: %w", err)
	}
	return blocks, nil
}

// MarkNotified flags a block as notified.
func (r *blockRepository) MarkNotified(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", appErrors.ErrBlockNotFound, id)
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"notified": true}})
	if err != nil {
		return fmt.Errorf("failed to mark block %s notified: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", appErrors.ErrBlockNotFound, id)
	}
	return nil
}
