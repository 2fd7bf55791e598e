package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates the unique indexes for every collection. The
// assignment indexes are not an optimization: they are what serializes
// concurrent claims so that two writers for the same juz produce one success
// and one duplicate-key error.
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if err := CreateAssignmentIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create assignment indexes: %w", err)
	}
	if err := CreateTransferIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create transfer indexes: %w", err)
	}
	if err := CreateBookmarkIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create bookmark indexes: %w", err)
	}
	if err := CreateSessionIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)

	// Unique index on email (case-insensitive); empty strings and null
	// values are excluded from the uniqueness constraint.
	emailIndexName := "email_unique"
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(emailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	return createIndexIfNotExists(ctx, coll, emailIndex, emailIndexName, reset)
}

// CreateAssignmentIndexes creates indexes for the juzAssignments collection.
// Together the two indexes carry the ledger invariants: at most one holder
// per juz per community, at most one juz per member per community.
func CreateAssignmentIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(JuzAssignmentsCollection)

	juzIndexName := "communityId_juzNumber_unique"
	juzIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "communityId", Value: 1}, {Key: "juzNumber", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(juzIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, juzIndex, juzIndexName, reset); err != nil {
		return err
	}

	memberIndexName := "communityId_memberId_unique"
	memberIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "communityId", Value: 1}, {Key: "memberId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(memberIndexName),
	}
	return createIndexIfNotExists(ctx, coll, memberIndex, memberIndexName, reset)
}

// CreateTransferIndexes creates indexes for the juzTransferRequests
// collection. The partial filter limits uniqueness to pending requests, so
// a member can request the same juz again after a decline.
func CreateTransferIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(TransferRequestsCollection)

	pendingIndexName := "communityId_requesterId_juzNumber_pending_unique"
	pendingIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "communityId", Value: 1},
			{Key: "requesterId", Value: 1},
			{Key: "juzNumber", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName(pendingIndexName).
			SetPartialFilterExpression(bson.M{
				"status": TransferStatusPending,
			}),
	}
	return createIndexIfNotExists(ctx, coll, pendingIndex, pendingIndexName, reset)
}

// CreateBookmarkIndexes creates indexes for the bookmarks collection
func CreateBookmarkIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(BookmarksCollection)

	bookmarkIndexName := "userId_surahId_ayahNumber_unique"
	bookmarkIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "surahId", Value: 1},
			{Key: "ayahNumber", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName(bookmarkIndexName),
	}
	return createIndexIfNotExists(ctx, coll, bookmarkIndex, bookmarkIndexName, reset)
}

// CreateSessionIndexes creates indexes for the recitationSessions collection
func CreateSessionIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(SessionsCollection)

	weekIndexName := "userId_weekKey"
	weekIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "weekKey", Value: 1}},
		Options: options.Index().SetName(weekIndexName),
	}
	return createIndexIfNotExists(ctx, coll, weekIndex, weekIndexName, reset)
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		if _, err := coll.Indexes().DropOne(ctx, indexName); err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
