package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gaeliza/match-system/internal/core/domain"
)

const collectionActions = "actions"

type ActionRepository struct {
	col *mongo.Collection
}

func NewActionRepository(db *mongo.Database) *ActionRepository {
	return &ActionRepository{col: db.Collection(collectionActions)}
}

func (r *ActionRepository) Insert(ctx context.Context, action *domain.Action) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, action); err != nil {
		return fmt.Errorf("insert action: %w", err)
	}
	return nil
}

// ListByMatch returns a match's actions in chronological match order.
func (r *ActionRepository) ListByMatch(ctx context.Context, matchID string) ([]*domain.Action, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "minute", Value: 1}, {Key: "second", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"match_id": matchID}, sort)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}

	var actions []*domain.Action
	if err := cursor.All(ctx, &actions); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}
	return actions, nil
}

// EnsureIndexes creates the match_id index used by the action feed.
func (r *ActionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "match_id", Value: 1}, {Key: "minute", Value: 1}},
	})
	return err
}
