package communities

import "github.com/lealre/recitation-backend/internal/mongodb"

func MapDbCommunityToApiCommunity(community mongodb.CommunityDb) Community {
	return Community{
		Id:          community.Id,
		Name:        community.Name,
		Description: community.Description,
		AdminId:     community.AdminId,
		MaxMembers:  community.MaxMembers,
		CreatedAt:   community.CreatedAt,
		UpdatedAt:   community.UpdatedAt,
	}
}

func MapDbAssignmentToApiAssignment(assignment mongodb.JuzAssignmentDb) JuzAssignment {
	return JuzAssignment{
		Id:                   assignment.Id,
		CommunityId:          assignment.CommunityId,
		JuzNumber:            assignment.JuzNumber,
		MemberId:             assignment.MemberId,
		AssignedAt:           assignment.AssignedAt,
		CompletionPercentage: assignment.CompletionPercentage,
	}
}
