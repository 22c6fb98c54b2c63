// Package persist saves typed values to a single file in one of the codec
// formats and loads them back.
//
// Saves are atomic: the encoded bytes go to a temporary file in the target
// directory which is flushed to disk and renamed over the destination, so a
// failed save leaves the previous file untouched. Reads go through viant/afs
// and accept any URL afs can resolve.
package persist
