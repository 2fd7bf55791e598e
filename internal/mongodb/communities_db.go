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

type CommunityDb struct {
	Id          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	AdminId     string    `json:"adminId" bson:"adminId"`
	MaxMembers  int       `json:"maxMembers" bson:"maxMembers"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) CreateCommunity(ctx context.Context, community CommunityDb) (CommunityDb, error) {
	coll := db.Collection(CommunitiesCollection)

	community.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	community.CreatedAt = now
	community.UpdatedAt = now

	_, err := coll.InsertOne(ctx, community)
	if err != nil {
		return CommunityDb{}, err
	}

	return community, nil
}

func (db *DB) GetCommunityById(ctx context.Context, id string) (CommunityDb, error) {
	coll := db.Collection(CommunitiesCollection)

	var community CommunityDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&community)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CommunityDb{}, ErrRecordNotFound
		}
		return CommunityDb{}, err
	}
	return community, nil
}

func (db *DB) CommunityExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(CommunitiesCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *DB) ListCommunities(ctx context.Context) ([]CommunityDb, error) {
	coll := db.Collection(CommunitiesCollection)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return []CommunityDb{}, err
	}
	defer cursor.Close(ctx)

	var communities []CommunityDb
	if err := cursor.All(ctx, &communities); err != nil {
		return []CommunityDb{}, err
	}
	return communities, nil
}
