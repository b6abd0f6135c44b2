// The [userdesk] package keeps a remote user directory and its derived
// views consistent within a single session.
//
// # The collection is the record of truth
//
// The remote collaborator is a JSONPlaceholder-style REST API that
// echoes writes without persisting them, so [Store] treats its in-memory
// collection as authoritative: a create, update or delete is sent to the
// remote side for shape validation, and on success the change is applied
// locally. Ids echoed by the collaborator are not durable, so [Store]
// synthesizes new ids as max(existing)+1.
//
// # Derived views
//
// The visible page always equals sort(search(filter(collection))) sliced
// to the current page window, and the reported total is the pre-slice
// length of that derived list. The derivation is recomputed after every
// mutation and every view-parameter change; with unchanged inputs it is
// idempotent.
//
// # Failure handling
//
// Remote failures ([github.com/userdesk/userdesk.go/pkg/gateway.TransportError]), rejected drafts
// ([ValidationError]) and missing targets ([NotFoundError]) are all
// recovered at the [Store] boundary: they are returned to the caller
// and, except for validation, held as the view's last error until
// dismissed. A failed operation leaves the collection exactly as it was.
//
// # Contrib
//
// The [github.com/userdesk/userdesk.go/contrib] directory contains a
// terminal dashboard over [Store] and a mock of the remote collaborator
// for offline use.
package userdesk
