package communities

import (
	"context"
	"errors"
	"time"

	"github.com/lealre/recitation-backend/internal/generics"
	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
	"go.mongodb.org/mongo-driver/mongo"
)

// ModificationWindow is how long after an assignment is created the member
// may still reassign themselves. After it closes, the only way to a
// different juz is a transfer accepted by the current holder.
const ModificationWindow = 48 * time.Hour

// Join adds a member to a community by assigning the lowest-numbered free
// juz. The unique index on (communityId, juzNumber) resolves races between
// concurrent joiners: a loser of one juz retries on the next free one.
// Assignable juz numbers are capped at maxMembers, so the same index also
// carries the member limit: a full community has no free juz left.
func Join(db *mongodb.DB, ctx context.Context, communityId, memberId string) (JuzAssignment, error) {
	if _, err := db.GetAssignmentByMember(ctx, communityId, memberId); err == nil {
		return JuzAssignment{}, ErrAlreadyMember
	} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
		return JuzAssignment{}, err
	}

	free, err := AvailableJuz(db, ctx, communityId)
	if err != nil {
		return JuzAssignment{}, err
	}

	for _, juz := range free {
		assignment, err := db.CreateJuzAssignment(ctx, mongodb.JuzAssignmentDb{
			CommunityId: communityId,
			JuzNumber:   juz,
			MemberId:    memberId,
		})
		if err == nil {
			return MapDbAssignmentToApiAssignment(assignment), nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return JuzAssignment{}, err
		}
		// Someone else won this juz, or this member joined concurrently.
		if _, gerr := db.GetAssignmentByMember(ctx, communityId, memberId); gerr == nil {
			return JuzAssignment{}, ErrAlreadyMember
		}
	}

	return JuzAssignment{}, ErrCommunityFull
}

// Claim assigns a specific available juz to a member who holds none yet.
// A member who already holds a juz must go through Reassign (or a transfer).
func Claim(db *mongodb.DB, ctx context.Context, communityId, memberId string, juzNumber int) (JuzAssignment, error) {
	if juzNumber < 1 || juzNumber > quran.JuzCount {
		return JuzAssignment{}, ErrInvalidJuzNumber
	}

	communityDb, err := GetCommunity(db, ctx, communityId)
	if err != nil {
		return JuzAssignment{}, err
	}

	if juzNumber > assignableJuzCap(communityDb.MaxMembers) {
		return JuzAssignment{}, ErrJuzNotAssignable
	}

	if _, err := db.GetAssignmentByMember(ctx, communityId, memberId); err == nil {
		return JuzAssignment{}, ErrAlreadyHasJuz
	} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
		return JuzAssignment{}, err
	}

	assignment, err := db.CreateJuzAssignment(ctx, mongodb.JuzAssignmentDb{
		CommunityId: communityId,
		JuzNumber:   juzNumber,
		MemberId:    memberId,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Decide which invariant rejected the insert.
			if _, gerr := db.GetAssignmentByMember(ctx, communityId, memberId); gerr == nil {
				return JuzAssignment{}, ErrAlreadyHasJuz
			}
			return JuzAssignment{}, ErrJuzTaken
		}
		return JuzAssignment{}, err
	}

	return MapDbAssignmentToApiAssignment(assignment), nil
}

// Reassign moves a member's own assignment to a different juz, allowed only
// inside the modification window.
func Reassign(db *mongodb.DB, ctx context.Context, communityId, memberId string, juzNumber int) (JuzAssignment, error) {
	if juzNumber < 1 || juzNumber > quran.JuzCount {
		return JuzAssignment{}, ErrInvalidJuzNumber
	}

	communityDb, err := GetCommunity(db, ctx, communityId)
	if err != nil {
		return JuzAssignment{}, err
	}
	if juzNumber > assignableJuzCap(communityDb.MaxMembers) {
		return JuzAssignment{}, ErrJuzNotAssignable
	}

	current, err := db.GetAssignmentByMember(ctx, communityId, memberId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return JuzAssignment{}, ErrNotMember
		}
		return JuzAssignment{}, err
	}

	if !withinModificationWindow(current.AssignedAt, time.Now()) {
		return JuzAssignment{}, ErrModificationWindowClosed
	}

	if current.JuzNumber == juzNumber {
		return MapDbAssignmentToApiAssignment(current), nil
	}

	updated, err := db.ReplaceMemberAssignment(ctx, communityId, memberId, juzNumber)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return JuzAssignment{}, ErrJuzTaken
		}
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return JuzAssignment{}, ErrNotMember
		}
		return JuzAssignment{}, err
	}

	return MapDbAssignmentToApiAssignment(updated), nil
}

// CanModify reports whether the member's current assignment is still inside
// the modification window. A member with no assignment cannot modify one.
func CanModify(db *mongodb.DB, ctx context.Context, communityId, memberId string) (bool, error) {
	assignment, err := db.GetAssignmentByMember(ctx, communityId, memberId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return withinModificationWindow(assignment.AssignedAt, time.Now()), nil
}

func withinModificationWindow(assignedAt, now time.Time) bool {
	return now.Sub(assignedAt) < ModificationWindow
}

// UpdateProgress records a completion snapshot for an assignment. The input
// is clamped to [0,100]; computing the percentage is the session tracker's
// job, not the ledger's.
func UpdateProgress(db *mongodb.DB, ctx context.Context, assignmentId, memberId string, completionPercentage int) (JuzAssignment, error) {
	assignment, err := db.GetAssignmentById(ctx, assignmentId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return JuzAssignment{}, ErrAssignmentNotFound
		}
		return JuzAssignment{}, err
	}
	if assignment.MemberId != memberId {
		return JuzAssignment{}, ErrNotAssignmentOwner
	}

	clamped := generics.ClampInt(completionPercentage, 0, 100)
	updated, err := db.UpdateAssignmentProgress(ctx, assignmentId, clamped)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return JuzAssignment{}, ErrAssignmentNotFound
		}
		return JuzAssignment{}, err
	}

	return MapDbAssignmentToApiAssignment(updated), nil
}

// AvailableJuz returns the assignable juz numbers with no current holder,
// ascending. Assignable means at most maxMembers: the member cap is enforced
// as "no free juz in range" rather than as a separate member count, so the
// (communityId, juzNumber) unique index decides races for the last seat too.
func AvailableJuz(db *mongodb.DB, ctx context.Context, communityId string) ([]int, error) {
	communityDb, err := GetCommunity(db, ctx, communityId)
	if err != nil {
		return nil, err
	}
	limit := assignableJuzCap(communityDb.MaxMembers)

	assignments, err := db.ListAssignments(ctx, communityId)
	if err != nil {
		return nil, err
	}

	held := make(map[int]bool, len(assignments))
	for _, assignment := range assignments {
		held[assignment.JuzNumber] = true
	}

	available := make([]int, 0, limit)
	for juz := 1; juz <= limit; juz++ {
		if !held[juz] {
			available = append(available, juz)
		}
	}
	return available, nil
}

func assignableJuzCap(maxMembers int) int {
	if maxMembers < 1 || maxMembers > quran.JuzCount {
		return quran.JuzCount
	}
	return maxMembers
}

// Leave removes the member's assignment, freeing their juz. The admin stays
// for the community's lifetime.
func Leave(db *mongodb.DB, ctx context.Context, communityId, memberId string) error {
	communityDb, err := GetCommunity(db, ctx, communityId)
	if err != nil {
		return err
	}
	if communityDb.AdminId == memberId {
		return ErrAdminCannotLeave
	}

	if err := db.DeleteAssignmentByMember(ctx, communityId, memberId); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}
	return nil
}
