// Package ostore implements store.IObjectStore on top of an xsync.MapOf.
//
// A record is the triple (id, payload, attributes). Create replaces the whole
// record. Write touches the payload only: attributes given at Create time stay
// visible through Read until the next Create or Delete of the same id.
//
// Attribute maps are copied on the way in and on the way out, so callers can
// never mutate stored state through a map they hold.
package ostore
