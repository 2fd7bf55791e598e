package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/services/communities"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type createCommunityResponse struct {
	Community  communities.Community     `json:"community"`
	Assignment communities.JuzAssignment `json:"assignment"`
}

func addCommunity(t *testing.T, token string, req communities.CreateCommunityRequest) createCommunityResponse {
	t.Helper()

	resp := doRequest(t, http.MethodPost, "/communities", token, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[createCommunityResponse](t, resp)
}

// addMember signs up a fresh user and joins them to the community.
func addMember(t *testing.T, communityId, email string) (users.User, string, communities.JuzAssignment) {
	t.Helper()

	member, token := addUser(t, users.NewUserRequest{
		Name:     "Member " + email,
		Email:    email,
		Password: "testpass123",
	})

	resp := doRequest(t, http.MethodPost, "/communities/"+communityId+"/join", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assignment := decodeBody[communities.JuzAssignment](t, resp)

	return member, token, assignment
}

// backdateAssignment pushes an assignment's assignedAt into the past,
// directly in the database, to get past the modification window.
func backdateAssignment(t *testing.T, assignmentId string, age time.Duration) {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.JuzAssignmentsCollection)

	result, err := coll.UpdateOne(ctx,
		bson.M{"_id": assignmentId},
		bson.M{"$set": bson.M{"assignedAt": time.Now().Add(-age)}},
	)
	require.NoError(t, err)
	require.EqualValues(t, 1, result.MatchedCount)
}
