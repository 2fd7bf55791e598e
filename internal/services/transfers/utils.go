package transfers

import (
	"errors"
	"net/http"
)

var (
	ErrRequestNotFound     = errors.New("transfer request not found")
	ErrJuzNotHeld          = errors.New("no one holds this juz; claim it directly instead")
	ErrSelfRequest         = errors.New("you already hold this juz")
	ErrDuplicateRequest    = errors.New("you already have a pending request for this juz")
	ErrNotRequestRecipient = errors.New("only the current holder of the juz can respond to this request")
	ErrAlreadyResolved     = errors.New("transfer request has already been resolved")
	ErrInvalidAction       = errors.New("action must be 'accept' or 'decline'")
)

var ErrorMap = map[error]int{
	ErrRequestNotFound:     http.StatusNotFound,
	ErrJuzNotHeld:          http.StatusConflict,
	ErrSelfRequest:         http.StatusConflict,
	ErrDuplicateRequest:    http.StatusConflict,
	ErrNotRequestRecipient: http.StatusForbidden,
	ErrAlreadyResolved:     http.StatusConflict,
	ErrInvalidAction:       http.StatusBadRequest,
}
