package domain

import (
	"errors"
	"strings"
)

var (
	ErrNoSource           = errors.New("no source image selected")
	ErrGenerationInFlight = errors.New("generation already in progress")
	ErrOutfitNotFound     = errors.New("outfit not found")
	ErrUnsupportedMedia   = errors.New("unsupported image type; use PNG, JPG, or WEBP")
)

// UnknownErrorMessage is shown for errors that carry no usable message.
const UnknownErrorMessage = "An unknown error occurred."

// PromoteErrorPrefix prefixes failures of re-using a result as the source.
const PromoteErrorPrefix = "Failed to use image as source: "

// GenerationError reports that one of the per-style generation calls failed.
type GenerationError struct {
	Style StyleLabel
	Err   error
}

func (e *GenerationError) Error() string {
	return Message(e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// FetchError reports that a result URL could not be turned back into bytes.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return Message(e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Message converts err into the single user-facing string shown in the UI.
func Message(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return UnknownErrorMessage
	}
	return msg
}
