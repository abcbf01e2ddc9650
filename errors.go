package sitekit

import (
	"errors"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/urlutil"
)

// Sentinel errors for library operations.
var (
	// ErrUnparseableDate is returned when every date matcher fails.
	ErrUnparseableDate = dateutil.ErrUnparseableDate

	// ErrMalformedURL is returned by the URL filters' underlying helpers.
	// The filters themselves log it and return their input unchanged.
	ErrMalformedURL = urlutil.ErrMalformedURL

	ErrNoContentDir = errors.New("content directory not found")

	// Registry errors.
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDuplicateName     = errors.New("name already registered")
	ErrInvalidName       = errors.New("invalid registration")

	// Filter argument errors.
	ErrInvalidArgument = errors.New("invalid filter argument")
)
