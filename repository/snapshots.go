package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxSnapshots bounds the rolling history; every save purges anything
// beyond the most recent entries.
const MaxSnapshots = 5

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSnapshotsRepo(client *mongo.Client, database string) *SnapshotsRepo {
	return &SnapshotsRepo{
		MongoCollection: client.Database(database).Collection("snapshots"),
	}
}

// Snapshots are keyed by their RFC3339 creation timestamp, which sorts
// chronologically as a string.
type snapshotDocument struct {
	ID        string        `bson:"_id"`
	Notes     []*model.Note `bson:"notes"`
	CreatedAt time.Time     `bson:"created_at"`
}

// SaveSnapshot stores an immutable copy under the timestamp and purges
// entries beyond the retention cap.
func (r *SnapshotsRepo) SaveSnapshot(ctx context.Context, timestamp string, notes []*model.Note) error {
	doc := snapshotDocument{
		ID:        timestamp,
		Notes:     notes,
		CreatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": timestamp}, doc, opts); err != nil {
		return err
	}

	timestamps, err := r.ListSnapshots(ctx)
	if err != nil {
		return err
	}
	stale := staleSnapshots(timestamps, MaxSnapshots)
	if len(stale) == 0 {
		return nil
	}

	_, err = r.MongoCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": stale}})
	return err
}

// ListSnapshots returns the retained timestamps, newest first.
func (r *SnapshotsRepo) ListSnapshots(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.M{"_id": 1})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	timestamps := make([]string, len(docs))
	for i, d := range docs {
		timestamps[i] = d.ID
	}
	return timestamps, nil
}

// RestoreSnapshot retrieves the note list stored under the timestamp.
func (r *SnapshotsRepo) RestoreSnapshot(ctx context.Context, timestamp string) ([]*model.Note, error) {
	var doc snapshotDocument
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": timestamp}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	if doc.Notes == nil {
		doc.Notes = []*model.Note{}
	}
	return doc.Notes, nil
}

// staleSnapshots returns the timestamps beyond the max most recent.
// Input order does not matter; newest-first is decided here.
func staleSnapshots(timestamps []string, max int) []string {
	sorted := append([]string(nil), timestamps...)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	if len(sorted) <= max {
		return nil
	}
	return sorted[max:]
}
