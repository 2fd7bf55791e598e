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

type RecitationSessionDb struct {
	Id             string    `json:"id" bson:"_id"`
	UserId         string    `json:"userId" bson:"userId"`
	SurahId        int       `json:"surahId" bson:"surahId"`
	FromAyah       int       `json:"fromAyah" bson:"fromAyah"`
	ToAyah         int       `json:"toAyah" bson:"toAyah"`
	PauseSeconds   int       `json:"pauseSeconds" bson:"pauseSeconds"`
	CompletedAyahs int       `json:"completedAyahs" bson:"completedAyahs"`
	SessionSeconds int       `json:"sessionSeconds" bson:"sessionSeconds"`
	IsCompleted    bool      `json:"isCompleted" bson:"isCompleted"`
	WeekKey        string    `json:"weekKey" bson:"weekKey"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) CreateSession(ctx context.Context, session RecitationSessionDb) (RecitationSessionDb, error) {
	coll := db.Collection(SessionsCollection)

	session.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := coll.InsertOne(ctx, session)
	if err != nil {
		return RecitationSessionDb{}, err
	}

	return session, nil
}

func (db *DB) GetSessionById(ctx context.Context, id string) (RecitationSessionDb, error) {
	coll := db.Collection(SessionsCollection)

	var session RecitationSessionDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RecitationSessionDb{}, ErrRecordNotFound
		}
		return RecitationSessionDb{}, err
	}
	return session, nil
}

// UpdateSessionProgress overwrites the progress snapshot: last write wins.
func (db *DB) UpdateSessionProgress(ctx context.Context, id, userId string, completedAyahs, sessionSeconds int, isCompleted bool) (RecitationSessionDb, error) {
	coll := db.Collection(SessionsCollection)

	filter := bson.M{"_id": id, "userId": userId}
	update := bson.M{"$set": bson.M{
		"completedAyahs": completedAyahs,
		"sessionSeconds": sessionSeconds,
		"isCompleted":    isCompleted,
		"updatedAt":      time.Now(),
	}}

	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return RecitationSessionDb{}, err
	}
	if result.MatchedCount == 0 {
		return RecitationSessionDb{}, ErrRecordNotFound
	}

	return db.GetSessionById(ctx, id)
}

func (db *DB) ListSessionsByUser(ctx context.Context, userId string) ([]RecitationSessionDb, error) {
	coll := db.Collection(SessionsCollection)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := coll.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return []RecitationSessionDb{}, err
	}
	defer cursor.Close(ctx)

	var sessions []RecitationSessionDb
	if err := cursor.All(ctx, &sessions); err != nil {
		return []RecitationSessionDb{}, err
	}
	return sessions, nil
}
