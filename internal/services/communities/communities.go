package communities

import (
	"context"
	"errors"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
)

const defaultMaxMembers = 30

func CreateCommunity(db *mongodb.DB, ctx context.Context, adminId string, req CreateCommunityRequest) (Community, JuzAssignment, error) {
	maxMembers := req.MaxMembers
	if maxMembers <= 0 || maxMembers > quran.JuzCount {
		maxMembers = defaultMaxMembers
	}

	communityDb, err := db.CreateCommunity(ctx, mongodb.CommunityDb{
		Name:        req.Name,
		Description: req.Description,
		AdminId:     adminId,
		MaxMembers:  maxMembers,
	})
	if err != nil {
		return Community{}, JuzAssignment{}, err
	}

	// The creator is the first member and takes the first juz.
	assignment, err := Join(db, ctx, communityDb.Id, adminId)
	if err != nil {
		return Community{}, JuzAssignment{}, err
	}

	return MapDbCommunityToApiCommunity(communityDb), assignment, nil
}

func ListCommunities(db *mongodb.DB, ctx context.Context) ([]Community, error) {
	communitiesDb, err := db.ListCommunities(ctx)
	if err != nil {
		return nil, err
	}

	communities := make([]Community, 0, len(communitiesDb))
	for _, communityDb := range communitiesDb {
		communities = append(communities, MapDbCommunityToApiCommunity(communityDb))
	}
	return communities, nil
}

func GetCommunity(db *mongodb.DB, ctx context.Context, communityId string) (mongodb.CommunityDb, error) {
	communityDb, err := db.GetCommunityById(ctx, communityId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.CommunityDb{}, ErrCommunityNotFound
		}
		return mongodb.CommunityDb{}, err
	}
	return communityDb, nil
}

// Details builds the 30-entry juz view for a community. Status is derived,
// never stored: a juz with no holder is available, a held one is classified
// by its completion percentage.
func Details(db *mongodb.DB, ctx context.Context, communityId string) (CommunityDetails, error) {
	communityDb, err := GetCommunity(db, ctx, communityId)
	if err != nil {
		return CommunityDetails{}, err
	}

	assignments, err := db.ListAssignments(ctx, communityId)
	if err != nil {
		return CommunityDetails{}, err
	}

	memberIds := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		memberIds = append(memberIds, assignment.MemberId)
	}
	members, err := db.GetUsersByIds(ctx, memberIds)
	if err != nil {
		return CommunityDetails{}, err
	}
	namesById := make(map[string]string, len(members))
	for _, member := range members {
		namesById[member.Id] = member.Name
	}

	byJuz := make(map[int]mongodb.JuzAssignmentDb, len(assignments))
	for _, assignment := range assignments {
		byJuz[assignment.JuzNumber] = assignment
	}

	juzData := make([]JuzEntry, 0, quran.JuzCount)
	for juz := 1; juz <= quran.JuzCount; juz++ {
		assignment, held := byJuz[juz]
		if !held {
			juzData = append(juzData, JuzEntry{JuzNumber: juz, Status: JuzStatusAvailable})
			continue
		}
		juzData = append(juzData, JuzEntry{
			JuzNumber:            juz,
			Status:               statusOf(assignment.CompletionPercentage),
			AssignmentId:         assignment.Id,
			MemberId:             assignment.MemberId,
			MemberName:           namesById[assignment.MemberId],
			CompletionPercentage: assignment.CompletionPercentage,
		})
	}

	return CommunityDetails{
		Community: MapDbCommunityToApiCommunity(communityDb),
		JuzData:   juzData,
	}, nil
}

func statusOf(completionPercentage int) string {
	switch {
	case completionPercentage == 100:
		return JuzStatusCompleted
	case completionPercentage > 0:
		return JuzStatusInProgress
	default:
		return JuzStatusNotStarted
	}
}
