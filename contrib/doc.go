// Package contrib holds applications built on top of the core userdesk
// library.
//
// Everything under contrib sits outside the core's compatibility
// guarantee. The directory includes
// [github.com/userdesk/userdesk.go/contrib/dashboard], a terminal
// dashboard over the store, and
// [github.com/userdesk/userdesk.go/contrib/mockapi], a stand-in for the
// remote collaborator that serves the same shapes without a network
// dependency.
package contrib
