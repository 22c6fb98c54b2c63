// Package model defines the records persisted by noted.
package model
