// Package codec holds the closed set of wire formats snapshots can be written
// in: MessagePack and CBOR (binary) and JSON and YAML (text).
//
// Callers dispatch on an explicit Format. FormatForPath offers the optional
// extension based mapping used by the auto save/load helpers.
package codec
