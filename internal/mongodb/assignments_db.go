package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type JuzAssignmentDb struct {
	Id                   string    `json:"id" bson:"_id"`
	CommunityId          string    `json:"communityId" bson:"communityId"`
	JuzNumber            int       `json:"juzNumber" bson:"juzNumber"`
	MemberId             string    `json:"memberId" bson:"memberId"`
	AssignedAt           time.Time `json:"assignedAt" bson:"assignedAt"`
	CompletionPercentage int       `json:"completionPercentage" bson:"completionPercentage"`
	UpdatedAt            time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

// CreateJuzAssignment inserts a new assignment row. The unique indexes on
// (communityId, juzNumber) and (communityId, memberId) reject concurrent
// writers; callers translate the duplicate-key error into a domain conflict.
func (db *DB) CreateJuzAssignment(ctx context.Context, assignment JuzAssignmentDb) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	assignment.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	assignment.AssignedAt = now
	assignment.UpdatedAt = now
	assignment.CompletionPercentage = 0

	_, err := coll.InsertOne(ctx, assignment)
	if err != nil {
		return JuzAssignmentDb{}, err
	}

	return assignment, nil
}

func (db *DB) GetAssignmentById(ctx context.Context, id string) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	var assignment JuzAssignmentDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return JuzAssignmentDb{}, ErrRecordNotFound
		}
		return JuzAssignmentDb{}, err
	}
	return assignment, nil
}

func (db *DB) GetAssignmentByMember(ctx context.Context, communityId, memberId string) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	var assignment JuzAssignmentDb
	err := coll.FindOne(ctx, bson.M{"communityId": communityId, "memberId": memberId}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return JuzAssignmentDb{}, ErrRecordNotFound
		}
		return JuzAssignmentDb{}, err
	}
	return assignment, nil
}

func (db *DB) GetAssignmentByJuz(ctx context.Context, communityId string, juzNumber int) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	var assignment JuzAssignmentDb
	err := coll.FindOne(ctx, bson.M{"communityId": communityId, "juzNumber": juzNumber}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return JuzAssignmentDb{}, ErrRecordNotFound
		}
		return JuzAssignmentDb{}, err
	}
	return assignment, nil
}

func (db *DB) ListAssignments(ctx context.Context, communityId string) ([]JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	opts := options.Find().SetSort(bson.M{"juzNumber": 1})
	cursor, err := coll.Find(ctx, bson.M{"communityId": communityId}, opts)
	if err != nil {
		return []JuzAssignmentDb{}, err
	}
	defer cursor.Close(ctx)

	var assignments []JuzAssignmentDb
	if err := cursor.All(ctx, &assignments); err != nil {
		return []JuzAssignmentDb{}, err
	}
	return assignments, nil
}

// ReplaceMemberAssignment moves a member's existing assignment to another juz
// in a single update, so the (communityId, juzNumber) unique index decides
// races: exactly one of two concurrent claimers of the same juz succeeds.
func (db *DB) ReplaceMemberAssignment(ctx context.Context, communityId, memberId string, juzNumber int) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	now := time.Now()
	filter := bson.M{"communityId": communityId, "memberId": memberId}
	update := bson.M{"$set": bson.M{
		"juzNumber":            juzNumber,
		"assignedAt":           now,
		"completionPercentage": 0,
		"updatedAt":            now,
	}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return JuzAssignmentDb{}, err
	}
	if result.MatchedCount == 0 {
		return JuzAssignmentDb{}, ErrRecordNotFound
	}

	return db.GetAssignmentByMember(ctx, communityId, memberId)
}

// TransferAssignment hands the juz held by fromMemberId over to toMemberId.
// The requester's own assignment (if any) is removed first so the member
// unique index does not block the handover; if the handover then fails, the
// removed row is restored.
func (db *DB) TransferAssignment(ctx context.Context, communityId string, juzNumber int, fromMemberId, toMemberId string) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	previous, err := db.GetAssignmentByMember(ctx, communityId, toMemberId)
	hadPrevious := err == nil
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return JuzAssignmentDb{}, err
	}
	if hadPrevious {
		if _, err := coll.DeleteOne(ctx, bson.M{"_id": previous.Id}); err != nil {
			return JuzAssignmentDb{}, err
		}
	}

	now := time.Now()
	filter := bson.M{"communityId": communityId, "juzNumber": juzNumber, "memberId": fromMemberId}
	update := bson.M{"$set": bson.M{
		"memberId":             toMemberId,
		"assignedAt":           now,
		"completionPercentage": 0,
		"updatedAt":            now,
	}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil || result.MatchedCount == 0 {
		if hadPrevious {
			if _, rerr := coll.InsertOne(ctx, previous); rerr != nil {
				log.Printf("ERROR: failed to restore assignment %s for member %s after transfer rollback: %v", previous.Id, toMemberId, rerr)
			}
		}
		if err != nil {
			return JuzAssignmentDb{}, err
		}
		return JuzAssignmentDb{}, ErrRecordNotFound
	}

	return db.GetAssignmentByMember(ctx, communityId, toMemberId)
}

func (db *DB) UpdateAssignmentProgress(ctx context.Context, id string, completionPercentage int) (JuzAssignmentDb, error) {
	coll := db.Collection(JuzAssignmentsCollection)

	update := bson.M{"$set": bson.M{
		"completionPercentage": completionPercentage,
		"updatedAt":            time.Now(),
	}}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return JuzAssignmentDb{}, err
	}
	if result.MatchedCount == 0 {
		return JuzAssignmentDb{}, ErrRecordNotFound
	}

	return db.GetAssignmentById(ctx, id)
}

func (db *DB) DeleteAssignmentByMember(ctx context.Context, communityId, memberId string) error {
	coll := db.Collection(JuzAssignmentsCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"communityId": communityId, "memberId": memberId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
