package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type BookmarkDb struct {
	Id         string    `json:"id" bson:"_id"`
	UserId     string    `json:"userId" bson:"userId"`
	SurahId    int       `json:"surahId" bson:"surahId"`
	AyahNumber int       `json:"ayahNumber" bson:"ayahNumber"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) CreateBookmark(ctx context.Context, bookmark BookmarkDb) (BookmarkDb, error) {
	coll := db.Collection(BookmarksCollection)

	bookmark.Id = primitive.NewObjectID().Hex()
	bookmark.CreatedAt = time.Now()

	_, err := coll.InsertOne(ctx, bookmark)
	if err != nil {
		return BookmarkDb{}, err
	}

	return bookmark, nil
}

func (db *DB) ListBookmarksByUser(ctx context.Context, userId string) ([]BookmarkDb, error) {
	coll := db.Collection(BookmarksCollection)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := coll.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return []BookmarkDb{}, err
	}
	defer cursor.Close(ctx)

	var bookmarks []BookmarkDb
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return []BookmarkDb{}, err
	}
	return bookmarks, nil
}

func (db *DB) DeleteBookmark(ctx context.Context, id, userId string) error {
	coll := db.Collection(BookmarksCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
