package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

// AyahDb is one verse of the populated corpus. The _id is the zero-padded
// "SSSAAA" verse key so imports are idempotent.
type AyahDb struct {
	Id          string `json:"id" bson:"_id"`
	SurahId     int    `json:"surahId" bson:"surahId"`
	Number      int    `json:"number" bson:"number"`
	Text        string `json:"text" bson:"text"`
	Translation string `json:"translation" bson:"translation"`
}

// ----- Methods for the database -----

func (db *DB) GetAyahs(ctx context.Context, surahId, fromAyah, toAyah int) ([]AyahDb, error) {
	coll := db.Collection(AyahsCollection)

	filter := bson.M{
		"surahId": surahId,
		"number":  bson.M{"$gte": fromAyah, "$lte": toAyah},
	}
	opts := options.Find().SetSort(bson.M{"number": 1})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []AyahDb{}, err
	}
	defer cursor.Close(ctx)

	var ayahs []AyahDb
	if err := cursor.All(ctx, &ayahs); err != nil {
		return []AyahDb{}, err
	}
	return ayahs, nil
}

func (db *DB) UpsertAyahs(ctx context.Context, ayahs []AyahDb) (int64, error) {
	coll := db.Collection(AyahsCollection)

	var models []mongo.WriteModel
	for _, ayah := range ayahs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": ayah.Id}).
			SetReplacement(ayah).
			SetUpsert(true))
	}
	if len(models) == 0 {
		return 0, nil
	}

	result, err := coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return result.UpsertedCount + result.ModifiedCount, nil
}

func (db *DB) CountAyahs(ctx context.Context, surahId int) (int64, error) {
	coll := db.Collection(AyahsCollection)
	return coll.CountDocuments(ctx, bson.M{"surahId": surahId})
}
