package users

import (
	"context"
	"errors"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, err
	}

	userDb, err := db.CreateUser(ctx, mongodb.UserDb{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}

	return MapDbUserToApiUser(userDb), nil
}

// Authenticate checks the email/password pair and returns the stored user.
func Authenticate(db *mongodb.DB, ctx context.Context, email, password string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, auth.ErrInvalidCredentials
		}
		return mongodb.UserDb{}, err
	}

	if err := auth.CheckPasswordHash(userDb.PasswordHash, password); err != nil {
		return mongodb.UserDb{}, err
	}

	if err := db.TouchUserLogin(ctx, userDb.Id); err != nil {
		return mongodb.UserDb{}, err
	}

	return userDb, nil
}

// CheckIfUserExist returns true when a user with the provided id exists.
// It returns false and nil error when the user does not exist.
// For other database errors, it returns false with the error for callers to handle.
func CheckIfUserExist(db *mongodb.DB, ctx context.Context, id string) (bool, error) {
	return db.UserExists(ctx, id)
}
