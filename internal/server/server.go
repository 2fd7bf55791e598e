package server

import (
	"net/http"
	"os"

	"github.com/lealre/recitation-backend/internal/api"
	"github.com/lealre/recitation-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer builds the full HTTP handler: routes, request id logging and
// JWT authentication. The JWT secret comes from the JWT_SECRET env var.
func NewServer(client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client)
	secret := os.Getenv("JWT_SECRET")
	apiHandlers := api.NewAPI(db, &secret)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", api.RootHandler)

	mux.HandleFunc("POST /auth/signup", apiHandlers.SignupHandler)
	mux.HandleFunc("POST /auth/login", apiHandlers.LoginHandler)
	mux.HandleFunc("GET /users/me", apiHandlers.GetMe)

	mux.HandleFunc("GET /surahs", apiHandlers.GetSurahs)
	mux.HandleFunc("GET /surahs/{id}/ayahs", apiHandlers.GetSurahAyahs)
	mux.HandleFunc("GET /juz/{number}", apiHandlers.GetJuzRange)

	mux.HandleFunc("POST /communities", apiHandlers.CreateCommunity)
	mux.HandleFunc("GET /communities", apiHandlers.GetCommunities)
	mux.HandleFunc("GET /communities/{id}", apiHandlers.GetCommunityDetails)
	mux.HandleFunc("POST /communities/{id}/join", apiHandlers.JoinCommunity)
	mux.HandleFunc("POST /communities/{id}/leave", apiHandlers.LeaveCommunity)
	mux.HandleFunc("POST /communities/{id}/claim", apiHandlers.ClaimJuz)
	mux.HandleFunc("PATCH /communities/{id}/claim", apiHandlers.ReassignJuz)
	mux.HandleFunc("GET /communities/{id}/available-juz", apiHandlers.GetAvailableJuz)
	mux.HandleFunc("GET /communities/{id}/can-modify", apiHandlers.CanModifyAssignment)
	mux.HandleFunc("POST /communities/{id}/transfers", apiHandlers.CreateTransferRequest)

	mux.HandleFunc("PATCH /assignments/{id}/progress", apiHandlers.UpdateJuzProgress)

	mux.HandleFunc("GET /transfers", apiHandlers.GetTransferRequests)
	mux.HandleFunc("PATCH /transfers/{id}", apiHandlers.RespondTransferRequest)

	mux.HandleFunc("POST /sessions", apiHandlers.CreateSession)
	mux.HandleFunc("GET /sessions", apiHandlers.GetSessions)
	mux.HandleFunc("GET /sessions/weekly", apiHandlers.GetWeeklySummary)
	mux.HandleFunc("PATCH /sessions/{id}", apiHandlers.UpdateSession)

	mux.HandleFunc("POST /bookmarks", apiHandlers.CreateBookmark)
	mux.HandleFunc("GET /bookmarks", apiHandlers.GetBookmarks)
	mux.HandleFunc("DELETE /bookmarks/{id}", apiHandlers.DeleteBookmark)

	authed := AuthMiddleware(secret, db)(mux)
	return RequestIdMiddleware(authed)
}
