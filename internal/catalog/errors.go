package catalog

import "errors"

// Startup validation errors. All of these are fatal by design:
// a malformed catalog must stop the process, not degrade silently.
var (
	ErrEmptyCatalog      = errors.New("intent catalog is empty")
	ErrMissingName       = errors.New("intent is missing a name")
	ErrDuplicateName     = errors.New("duplicate intent name")
	ErrInvalidVisibility = errors.New("intent visibility must be public or private")
	ErrNoExamples        = errors.New("intent has no example utterances")
	ErrReservedName      = errors.New("intent name is reserved")
)
