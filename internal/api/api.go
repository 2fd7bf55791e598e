package api

import (
	"strings"

	"github.com/lealre/recitation-backend/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}

// PublicPaths lists the endpoints the auth middleware lets through without
// a token. Keys are "METHOD /path".
var PublicPaths = map[string]bool{
	"GET /":             true,
	"POST /auth/login":  true,
	"POST /auth/signup": true,
	"GET /surahs":       true,
}

// PublicPathPrefixes covers public routes with a path parameter, which an
// exact-match lookup cannot express. Only Quran text reading lives here.
var PublicPathPrefixes = []string{
	"GET /surahs/",
}

// IsPublicPath reports whether the request may skip authentication.
func IsPublicPath(method, path string) bool {
	key := method + " " + path
	if PublicPaths[key] {
		return true
	}
	for _, prefix := range PublicPathPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
