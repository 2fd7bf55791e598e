package tests

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/services/communities"
	"github.com/lealre/recitation-backend/internal/services/transfers"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/stretchr/testify/require"
)

// transferFixture wires a community with an admin holding juz 1 and a
// member holding juz 2.
type transferFixture struct {
	communityId string
	admin       users.User
	adminToken  string
	member      users.User
	memberToken string
}

func newTransferFixture(t *testing.T) transferFixture {
	t.Helper()

	admin, adminToken := addUser(t, users.NewUserRequest{
		Name:     "Admin",
		Email:    "admin@email.com",
		Password: "testpass123",
	})
	created := addCommunity(t, adminToken, communities.CreateCommunityRequest{Name: "Circle"})
	member, memberToken, _ := addMember(t, created.Community.Id, "member@email.com")

	return transferFixture{
		communityId: created.Community.Id,
		admin:       admin,
		adminToken:  adminToken,
		member:      member,
		memberToken: memberToken,
	}
}

func (f transferFixture) requestJuz(t *testing.T, token string, juzNumber int) *http.Response {
	t.Helper()
	return doRequest(t, http.MethodPost, "/communities/"+f.communityId+"/transfers", token,
		transfers.CreateTransferRequest{JuzNumber: juzNumber})
}

func TestCreateTransferRequest(t *testing.T) {
	t.Run("Requesting a held juz creates a pending request", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		request := decodeBody[transfers.TransferRequest](t, resp)
		require.Equal(t, "pending", request.Status)
		require.Equal(t, f.admin.Id, request.HolderId)
		require.Equal(t, f.member.Id, request.RequesterId)
		require.Nil(t, request.ResolvedAt)
	})

	t.Run("Requesting an unheld juz is rejected", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 15)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Requesting your own juz is rejected", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 2)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Duplicate pending requests are rejected", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = f.requestJuz(t, f.memberToken, 1)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Concurrent duplicate requests produce one pending request", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		// Both writers race past the pending check; the partial unique
		// index on pending requests lets only one insert through.
		statuses := make([]int, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp := f.requestJuz(t, f.memberToken, 1)
				statuses[i] = resp.StatusCode
				resp.Body.Close()
			}(i)
		}
		wg.Wait()

		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, statuses)

		resp := doRequest(t, http.MethodGet, "/transfers", f.memberToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		requests := decodeBody[transfers.RequestsByMember](t, resp)
		require.Len(t, requests.Sent, 1)
	})
}

func TestRespondTransferRequest(t *testing.T) {
	t.Run("Accepting hands the juz to the requester", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: transfers.ActionAccept})
		require.Equal(t, http.StatusOK, respond.StatusCode)

		resolved := decodeBody[transfers.TransferRequest](t, respond)
		require.Equal(t, "accepted", resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)

		// The requester now holds juz 1 and their old juz 2 is free, as is
		// the admin's seat.
		respAvailable := doRequest(t, http.MethodGet, "/communities/"+f.communityId+"/available-juz", f.adminToken, nil)
		available := decodeBody[communities.AvailableJuzResponse](t, respAvailable)
		require.NotContains(t, available.AvailableJuz, 1)
		require.Contains(t, available.AvailableJuz, 2)

		respDetails := doRequest(t, http.MethodGet, "/communities/"+f.communityId, f.adminToken, nil)
		details := decodeBody[communities.CommunityDetails](t, respDetails)
		require.Equal(t, f.member.Id, details.JuzData[0].MemberId)
	})

	t.Run("Declining leaves the ledger untouched", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: transfers.ActionDecline})
		require.Equal(t, http.StatusOK, respond.StatusCode)

		resolved := decodeBody[transfers.TransferRequest](t, respond)
		require.Equal(t, "declined", resolved.Status)

		respDetails := doRequest(t, http.MethodGet, "/communities/"+f.communityId, f.adminToken, nil)
		details := decodeBody[communities.CommunityDetails](t, respDetails)
		require.Equal(t, f.admin.Id, details.JuzData[0].MemberId)
		require.Equal(t, f.member.Id, details.JuzData[1].MemberId)
	})

	t.Run("Responding twice is rejected", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: transfers.ActionDecline})
		require.Equal(t, http.StatusOK, respond.StatusCode)
		respond.Body.Close()

		respond = doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: transfers.ActionAccept})
		require.Equal(t, http.StatusConflict, respond.StatusCode)
		respond.Body.Close()
	})

	t.Run("Only the holder can respond", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.memberToken,
			transfers.RespondRequest{Action: transfers.ActionAccept})
		require.Equal(t, http.StatusForbidden, respond.StatusCode)
		respond.Body.Close()
	})

	t.Run("A reopened request accepts responses again", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		// Resolve and reopen directly, the way an accept whose ledger
		// handover failed is rolled back.
		db := mongodb.NewDB(testClient)
		_, err := db.ResolveTransferRequest(context.Background(), request.Id, mongodb.TransferStatusAccepted)
		require.NoError(t, err)
		require.NoError(t, db.ReopenTransferRequest(context.Background(), request.Id))

		reopened, err := db.GetTransferRequestById(context.Background(), request.Id)
		require.NoError(t, err)
		require.Equal(t, mongodb.TransferStatusPending, reopened.Status)
		require.Nil(t, reopened.ResolvedAt)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: transfers.ActionDecline})
		require.Equal(t, http.StatusOK, respond.StatusCode)
		respond.Body.Close()
	})

	t.Run("An unknown action is rejected", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		resp := f.requestJuz(t, f.memberToken, 1)
		request := decodeBody[transfers.TransferRequest](t, resp)

		respond := doRequest(t, http.MethodPatch, "/transfers/"+request.Id, f.adminToken,
			transfers.RespondRequest{Action: "maybe"})
		require.Equal(t, http.StatusBadRequest, respond.StatusCode)
		respond.Body.Close()
	})
}

func TestListTransferRequests(t *testing.T) {
	t.Run("Partitioning received and sent requests", func(t *testing.T) {
		resetDB(t)
		f := newTransferFixture(t)

		// Member asks for the admin's juz; admin asks for the member's.
		resp := f.requestJuz(t, f.memberToken, 1)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
		resp = f.requestJuz(t, f.adminToken, 2)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		respList := doRequest(t, http.MethodGet, "/transfers", f.adminToken, nil)
		require.Equal(t, http.StatusOK, respList.StatusCode)
		listed := decodeBody[transfers.RequestsByMember](t, respList)

		require.Len(t, listed.Received, 1)
		require.Equal(t, 1, listed.Received[0].JuzNumber)
		require.Len(t, listed.Sent, 1)
		require.Equal(t, 2, listed.Sent[0].JuzNumber)
	})
}
