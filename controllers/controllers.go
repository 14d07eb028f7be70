// Package controllers holds the HTTP handlers for the booking API. All
// persistence goes through the shared Store set up in main.
package controllers

import "studiobook-backend/store"

// Store is the persistence boundary used by every handler.
var Store store.Store

// Init wires the store used by the handlers.
func Init(s store.Store) {
	Store = s
}
