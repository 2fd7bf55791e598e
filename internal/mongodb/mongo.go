package mongodb

import (
	"errors"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRecordNotFound = errors.New("record not found in the database")

const (
	UsersCollection            = "users"
	CommunitiesCollection      = "communities"
	JuzAssignmentsCollection   = "juzAssignments"
	TransferRequestsCollection = "juzTransferRequests"
	AyahsCollection            = "ayahs"
	SessionsCollection         = "recitationSessions"
	BookmarksCollection        = "bookmarks"
)

// DB wraps the application database so every query goes through one place.
type DB struct {
	database *mongo.Database
}

func NewDB(client *mongo.Client) *DB {
	return &DB{database: client.Database(DatabaseName())}
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) Database() *mongo.Database {
	return db.database
}

func DatabaseName() string {
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "recitation"
	}
	return name
}
