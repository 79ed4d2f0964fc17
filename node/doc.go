// Package node implements an in-memory tree of identifier-addressed nodes
// carrying a generic content payload.
//
// A Node exclusively owns its children; the tree has no back-references, no
// sharing and therefore no cycles. Identifiers are labels, not keys: they are
// not required to be unique and every lookup returns the first match.
//
// Besides construction and direct content access, a node can locate a
// descendant by identifier and splice new nodes relative to it with Before,
// After and Replace. None of the operations are safe for concurrent use; an
// embedding program must serialize access to a tree.
package node // import "github.com/montaguethomas/reportree/node"
