// Package tinyid implements short, user-typeable identifiers used as primary
// keys for notes in place of a full-length UUID.
//
// An ID is an 8 byte random payload. Its canonical text form is an 11
// character fixed-width base58 string over the Bitcoin alphabet, which leaves
// out the look-alike characters 0, O, I and l so identifiers survive being
// read aloud or retyped from a screen:
//
//	id := tinyid.Generate()
//	s := id.String()          // e.g. "4Hc9qZ2mWxT"
//	back, err := tinyid.Parse(s)
//
// Equality and ordering are defined over the raw bytes. Callers that need a
// stable display order must sort with Compare rather than on the strings.
package tinyid
