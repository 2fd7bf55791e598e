package transfers

import "time"

type TransferRequest struct {
	Id          string     `json:"id"`
	CommunityId string     `json:"communityId"`
	JuzNumber   int        `json:"juzNumber"`
	HolderId    string     `json:"holderId"`
	RequesterId string     `json:"requesterId"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type CreateTransferRequest struct {
	JuzNumber int `json:"juzNumber"`
}

const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)

type RespondRequest struct {
	Action string `json:"action"`
}

// RequestsByMember partitions a member's requests into the ones they must
// answer (received, they hold the juz) and the ones they are waiting on
// (sent, they asked for the juz).
type RequestsByMember struct {
	Received []TransferRequest `json:"received"`
	Sent     []TransferRequest `json:"sent"`
}
