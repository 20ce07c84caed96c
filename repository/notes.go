package repository

import (
	"context"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The whole note list lives in one document and is rewritten wholesale
// after every mutation, so a read always sees a complete collection.
const notesDocID = "notes"

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, database string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(database).Collection("notes"),
	}
}

type notesDocument struct {
	ID        string        `bson:"_id"`
	Notes     []*model.Note `bson:"notes"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// SaveNotes replaces the stored list with the given one.
func (r *NotesRepo) SaveNotes(ctx context.Context, notes []*model.Note) error {
	doc := notesDocument{
		ID:        notesDocID,
		Notes:     notes,
		UpdatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": notesDocID}, doc, opts)
	return err
}

// LoadNotes retrieves the stored list. A missing document yields an
// empty collection; a document that cannot be decoded surfaces as an
// error so the caller can log it and start empty.
func (r *NotesRepo) LoadNotes(ctx context.Context) ([]*model.Note, error) {
	var doc notesDocument
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": notesDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []*model.Note{}, nil
	}
	if err != nil {
		return nil, err
	}

	if doc.Notes == nil {
		doc.Notes = []*model.Note{}
	}
	return doc.Notes, nil
}
