package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

const (
	TransferStatusPending  = "pending"
	TransferStatusAccepted = "accepted"
	TransferStatusDeclined = "declined"
)

type TransferRequestDb struct {
	Id          string     `json:"id" bson:"_id"`
	CommunityId string     `json:"communityId" bson:"communityId"`
	JuzNumber   int        `json:"juzNumber" bson:"juzNumber"`
	HolderId    string     `json:"holderId" bson:"holderId"`
	RequesterId string     `json:"requesterId" bson:"requesterId"`
	Status      string     `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
}

// ----- Methods for the database -----

func (db *DB) CreateTransferRequest(ctx context.Context, request TransferRequestDb) (TransferRequestDb, error) {
	coll := db.Collection(TransferRequestsCollection)

	request.Id = primitive.NewObjectID().Hex()
	request.Status = TransferStatusPending
	request.CreatedAt = time.Now()
	request.ResolvedAt = nil

	_, err := coll.InsertOne(ctx, request)
	if err != nil {
		return TransferRequestDb{}, err
	}

	return request, nil
}

func (db *DB) GetTransferRequestById(ctx context.Context, id string) (TransferRequestDb, error) {
	coll := db.Collection(TransferRequestsCollection)

	var request TransferRequestDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return TransferRequestDb{}, ErrRecordNotFound
		}
		return TransferRequestDb{}, err
	}
	return request, nil
}

func (db *DB) HasPendingTransferRequest(ctx context.Context, communityId, requesterId string, juzNumber int) (bool, error) {
	coll := db.Collection(TransferRequestsCollection)

	filter := bson.M{
		"communityId": communityId,
		"requesterId": requesterId,
		"juzNumber":   juzNumber,
		"status":      TransferStatusPending,
	}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, filter, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *DB) ListTransferRequestsByMember(ctx context.Context, memberId string) ([]TransferRequestDb, error) {
	coll := db.Collection(TransferRequestsCollection)

	filter := bson.M{"$or": []bson.M{
		{"holderId": memberId},
		{"requesterId": memberId},
	}}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []TransferRequestDb{}, err
	}
	defer cursor.Close(ctx)

	var requests []TransferRequestDb
	if err := cursor.All(ctx, &requests); err != nil {
		return []TransferRequestDb{}, err
	}
	return requests, nil
}

// ResolveTransferRequest moves a pending request to a terminal status. The
// status guard in the filter makes resolution idempotent: a second respond
// matches nothing and reports ErrRecordNotFound to the caller.
func (db *DB) ResolveTransferRequest(ctx context.Context, id, status string) (TransferRequestDb, error) {
	coll := db.Collection(TransferRequestsCollection)

	now := time.Now()
	filter := bson.M{"_id": id, "status": TransferStatusPending}
	update := bson.M{"$set": bson.M{"status": status, "resolvedAt": now}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return TransferRequestDb{}, err
	}
	if result.MatchedCount == 0 {
		return TransferRequestDb{}, ErrRecordNotFound
	}

	return db.GetTransferRequestById(ctx, id)
}

// ReopenTransferRequest puts a resolved request back to pending. Used to
// undo an accept whose ledger handover failed, so the holder can respond
// again instead of the request dying as accepted-but-not-transferred.
func (db *DB) ReopenTransferRequest(ctx context.Context, id string) error {
	coll := db.Collection(TransferRequestsCollection)

	update := bson.M{
		"$set":   bson.M{"status": TransferStatusPending},
		"$unset": bson.M{"resolvedAt": ""},
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
