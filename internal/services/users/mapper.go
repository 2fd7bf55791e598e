package users

import "github.com/lealre/recitation-backend/internal/mongodb"

func MapDbUserToApiUser(user mongodb.UserDb) User {
	return User{
		Id:          user.Id,
		Name:        user.Name,
		Email:       user.Email,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
