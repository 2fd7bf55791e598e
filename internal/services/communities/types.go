package communities

import "time"

type Community struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AdminId     string    `json:"adminId"`
	MaxMembers  int       `json:"maxMembers"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type JuzAssignment struct {
	Id                   string    `json:"id"`
	CommunityId          string    `json:"communityId"`
	JuzNumber            int       `json:"juzNumber"`
	MemberId             string    `json:"memberId"`
	AssignedAt           time.Time `json:"assignedAt"`
	CompletionPercentage int       `json:"completionPercentage"`
}

type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxMembers  int    `json:"maxMembers"`
}

type ClaimJuzRequest struct {
	JuzNumber int `json:"juzNumber"`
}

type UpdateProgressRequest struct {
	CompletionPercentage int `json:"completionPercentage"`
}

// JuzStatus values derived for community details.
const (
	JuzStatusAvailable  = "available"
	JuzStatusNotStarted = "not_started"
	JuzStatusInProgress = "in_progress"
	JuzStatusCompleted  = "completed"
)

// JuzEntry is one row of the 30-entry details view.
type JuzEntry struct {
	JuzNumber            int    `json:"juzNumber"`
	Status               string `json:"status"`
	AssignmentId         string `json:"assignmentId,omitempty"`
	MemberId             string `json:"memberId,omitempty"`
	MemberName           string `json:"memberName,omitempty"`
	CompletionPercentage int    `json:"completionPercentage"`
}

type CommunityDetails struct {
	Community Community  `json:"community"`
	JuzData   []JuzEntry `json:"juzData"`
}

type CanModifyResponse struct {
	CanModify bool `json:"canModify"`
}

type AvailableJuzResponse struct {
	AvailableJuz []int `json:"availableJuz"`
}

type AllCommunitiesResponse struct {
	Communities []Community `json:"communities"`
}
