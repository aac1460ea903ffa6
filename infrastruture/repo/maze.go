package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	dmn "github.com/ilhamhanifan/maze-solver/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
	maxListLimit = 100
)

var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index used to list recent mazes.
func (r *MazeRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or updates a maze by its ID.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": m.ID}
	update := bson.M{
		"$set": bson.M{
			"cols":      m.Cols,
			"rows":      m.Rows,
			"seed":      m.Seed,
			"walls":     m.Walls,
			"path":      m.Path,
			"solved":    m.Solved,
			"createdAt": m.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", m.ID, err)
	}
	return nil
}

// ByID retrieves a maze by its ID.
// Returns ErrMazeNotFound if no maze has that ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var m dmn.Maze
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}
	return &m, nil
}

// Recent lists up to limit mazes, newest first.
func (r *MazeRepo) Recent(ctx context.Context, limit int64) ([]*dmn.Maze, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing mazes: %w", err)
	}

	mazes := []*dmn.Maze{}
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, fmt.Errorf("decoding mazes: %w", err)
	}
	return mazes, nil
}
