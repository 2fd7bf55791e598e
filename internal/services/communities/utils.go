package communities

import (
	"errors"
	"net/http"
)

var (
	ErrCommunityNotFound        = errors.New("community not found")
	ErrCommunityFull            = errors.New("community has reached its maximum number of members")
	ErrAlreadyMember            = errors.New("member already holds a juz in this community")
	ErrNotMember                = errors.New("member has no juz assignment in this community")
	ErrJuzTaken                 = errors.New("juz is already assigned to another member")
	ErrAlreadyHasJuz            = errors.New("member already holds a juz; use reassignment instead")
	ErrInvalidJuzNumber         = errors.New("juz number must be between 1 and 30")
	ErrJuzNotAssignable         = errors.New("juz number exceeds the community's member limit")
	ErrModificationWindowClosed = errors.New("the 48-hour modification window has closed; request a transfer instead")
	ErrNotAssignmentOwner       = errors.New("only the assignment holder can update its progress")
	ErrAssignmentNotFound       = errors.New("juz assignment not found")
	ErrAdminCannotLeave         = errors.New("the community admin cannot leave the community")
)

var ErrorMap = map[error]int{
	ErrCommunityNotFound:        http.StatusNotFound,
	ErrCommunityFull:            http.StatusConflict,
	ErrAlreadyMember:            http.StatusConflict,
	ErrNotMember:                http.StatusConflict,
	ErrJuzTaken:                 http.StatusConflict,
	ErrAlreadyHasJuz:            http.StatusConflict,
	ErrInvalidJuzNumber:         http.StatusBadRequest,
	ErrJuzNotAssignable:         http.StatusBadRequest,
	ErrModificationWindowClosed: http.StatusForbidden,
	ErrNotAssignmentOwner:       http.StatusForbidden,
	ErrAssignmentNotFound:       http.StatusNotFound,
	ErrAdminCannotLeave:         http.StatusConflict,
}
