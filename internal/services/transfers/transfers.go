package transfers

import (
	"context"
	"errors"
	"log"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
	"github.com/lealre/recitation-backend/internal/services/communities"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create opens a request for a juz held by another member. The holder is
// resolved from the ledger, never taken from the request body, so the
// direction is always requester asking the current holder.
func Create(db *mongodb.DB, ctx context.Context, communityId, requesterId string, juzNumber int) (TransferRequest, error) {
	if juzNumber < 1 || juzNumber > quran.JuzCount {
		return TransferRequest{}, communities.ErrInvalidJuzNumber
	}

	if _, err := communities.GetCommunity(db, ctx, communityId); err != nil {
		return TransferRequest{}, err
	}

	holder, err := db.GetAssignmentByJuz(ctx, communityId, juzNumber)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return TransferRequest{}, ErrJuzNotHeld
		}
		return TransferRequest{}, err
	}
	if holder.MemberId == requesterId {
		return TransferRequest{}, ErrSelfRequest
	}

	pending, err := db.HasPendingTransferRequest(ctx, communityId, requesterId, juzNumber)
	if err != nil {
		return TransferRequest{}, err
	}
	if pending {
		return TransferRequest{}, ErrDuplicateRequest
	}

	requestDb, err := db.CreateTransferRequest(ctx, mongodb.TransferRequestDb{
		CommunityId: communityId,
		JuzNumber:   juzNumber,
		HolderId:    holder.MemberId,
		RequesterId: requesterId,
	})
	if err != nil {
		// The pending check above is only a fast path; the partial unique
		// index on (communityId, requesterId, juzNumber) decides races.
		if mongo.IsDuplicateKeyError(err) {
			return TransferRequest{}, ErrDuplicateRequest
		}
		return TransferRequest{}, err
	}

	return MapDbRequestToApiRequest(requestDb), nil
}

// Respond resolves a pending request. Accepting hands the juz over in the
// ledger; the holder's consent substitutes for the modification window, so
// neither the 48-hour gate nor the taken-juz check applies. Declining only
// records the refusal.
func Respond(db *mongodb.DB, ctx context.Context, requestId, responderId, action string) (TransferRequest, error) {
	if action != ActionAccept && action != ActionDecline {
		return TransferRequest{}, ErrInvalidAction
	}

	requestDb, err := db.GetTransferRequestById(ctx, requestId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return TransferRequest{}, ErrRequestNotFound
		}
		return TransferRequest{}, err
	}

	if requestDb.Status != mongodb.TransferStatusPending {
		return TransferRequest{}, ErrAlreadyResolved
	}
	if requestDb.HolderId != responderId {
		return TransferRequest{}, ErrNotRequestRecipient
	}

	// The responder must still hold the juz; the assignment may have moved
	// since the request was created.
	holder, err := db.GetAssignmentByJuz(ctx, requestDb.CommunityId, requestDb.JuzNumber)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return TransferRequest{}, ErrNotRequestRecipient
		}
		return TransferRequest{}, err
	}
	if holder.MemberId != responderId {
		return TransferRequest{}, ErrNotRequestRecipient
	}

	if action == ActionDecline {
		resolved, err := db.ResolveTransferRequest(ctx, requestId, mongodb.TransferStatusDeclined)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				return TransferRequest{}, ErrAlreadyResolved
			}
			return TransferRequest{}, err
		}
		return MapDbRequestToApiRequest(resolved), nil
	}

	// Resolve the request first; the pending-status filter guarantees only
	// one accept ever reaches the ledger mutation.
	resolved, err := db.ResolveTransferRequest(ctx, requestId, mongodb.TransferStatusAccepted)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return TransferRequest{}, ErrAlreadyResolved
		}
		return TransferRequest{}, err
	}

	if _, err := db.TransferAssignment(ctx, requestDb.CommunityId, requestDb.JuzNumber, requestDb.HolderId, requestDb.RequesterId); err != nil {
		// Put the request back to pending so the accept can be retried;
		// otherwise it would sit accepted with the juz never handed over.
		if rerr := db.ReopenTransferRequest(ctx, requestId); rerr != nil {
			log.Printf("ERROR: failed to reopen transfer request %s after handover failure: %v", requestId, rerr)
		}
		return TransferRequest{}, err
	}

	return MapDbRequestToApiRequest(resolved), nil
}

// List partitions all of a member's requests across communities into
// received and sent, newest first.
func List(db *mongodb.DB, ctx context.Context, memberId string) (RequestsByMember, error) {
	requestsDb, err := db.ListTransferRequestsByMember(ctx, memberId)
	if err != nil {
		return RequestsByMember{}, err
	}

	result := RequestsByMember{
		Received: []TransferRequest{},
		Sent:     []TransferRequest{},
	}
	for _, requestDb := range requestsDb {
		request := MapDbRequestToApiRequest(requestDb)
		if requestDb.HolderId == memberId {
			result.Received = append(result.Received, request)
		}
		if requestDb.RequesterId == memberId {
			result.Sent = append(result.Sent, request)
		}
	}
	return result, nil
}

func MapDbRequestToApiRequest(request mongodb.TransferRequestDb) TransferRequest {
	return TransferRequest{
		Id:          request.Id,
		CommunityId: request.CommunityId,
		JuzNumber:   request.JuzNumber,
		HolderId:    request.HolderId,
		RequesterId: request.RequesterId,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
		ResolvedAt:  request.ResolvedAt,
	}
}
