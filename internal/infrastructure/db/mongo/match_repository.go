package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gaeliza/match-system/internal/core/domain"
)

const collectionMatches = "matches"

type MatchRepository struct {
	col *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{col: db.Collection(collectionMatches)}
}

func (r *MatchRepository) Insert(ctx context.Context, match *domain.Match) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, match); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Match
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("find match: %w", err)
	}
	return &m, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]*domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "match_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	var matches []*domain.Match
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return matches, nil
}

func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": match.ID}, match)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
