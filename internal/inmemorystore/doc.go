// Package inmemorystore provides the in-process implementation of the
// nodestore.Store interface.
package inmemorystore
