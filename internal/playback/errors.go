package playback

import "errors"

var (
	ErrNoVerses           = errors.New("the playback list is empty")
	ErrNoAudioLoaded      = errors.New("no verse audio has been loaded")
	ErrLoadingInProgress  = errors.New("verse audio is still loading")
	ErrAudioUnavailable   = errors.New("both audio sources failed for this verse")
	ErrInvalidPauseLength = errors.New("pause duration must be between 0 and 30 seconds")
)
