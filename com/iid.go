package com

import (
	"github.com/google/uuid"
)

// IID is an interface identifier: a GUID naming one capability contract.
// IIDs are fixed at compile time and never change between builds.
type IID uuid.UUID

// IIDUnknown identifies the base contract every object implements.
var IIDUnknown = MustParseIID("00000000-0000-0000-c000-000000000046")

// ParseIID parses the canonical GUID text form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx). Braced and urn:uuid: forms are
// accepted as well.
func ParseIID(s string) (IID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return IID{}, err
	}
	return IID(u), nil
}

// MustParseIID is like ParseIID but panics on error.
// Use only for package-level identifier declarations.
func MustParseIID(s string) IID {
	return IID(uuid.MustParse(s))
}

// String returns the canonical lower-case GUID text form.
func (id IID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the all-zero identifier.
func (id IID) IsZero() bool {
	return id == IID{}
}
