package node

import (
	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
)

// After inserts a new node right after the node identified by placeID. When
// placeID is n's own identifier, the new node becomes n's last child.
func (n *Node[T]) After(placeID, id string, value T) (*Node[T], error) {
	loc, err := n.find(placeID)
	if err != nil {
		return nil, err
	}
	if loc.kind == selfMatch {
		return loc.parent.Append(id, value), nil
	}
	return loc.parent.insertChild(loc.index+1, NewWithValue(id, value)), nil
}

// Before inserts a new node right before the node identified by placeID,
// shifting it and its following siblings. When placeID is n's own identifier,
// the new node becomes n's first child.
func (n *Node[T]) Before(placeID, id string, value T) (*Node[T], error) {
	loc, err := n.find(placeID)
	if err != nil {
		return nil, err
	}
	if loc.kind == selfMatch {
		return loc.parent.Prepend(id, value), nil
	}
	return loc.parent.insertChild(loc.index, NewWithValue(id, value)), nil
}

// Replace overwrites the node identified by placeID, together with its
// subtree, with a new node. n itself cannot be replaced: targeting its
// identifier returns constants.ErrReplaceSelf and leaves the tree untouched.
func (n *Node[T]) Replace(placeID, id string, value T) (*Node[T], error) {
	loc, err := n.find(placeID)
	if err != nil {
		return nil, err
	}
	if loc.kind == selfMatch {
		log.Debugf("%s: %q", constants.ErrReplaceSelf, placeID)
		return nil, constants.ErrReplaceSelf
	}
	return loc.parent.setChild(loc.index, NewWithValue(id, value)), nil
}

func (n *Node[T]) find(placeID string) (location[T], error) {
	loc := n.locate(placeID)
	if loc.kind == notFound {
		log.Debugf("%s: %q", constants.ErrNodeNotFound, placeID)
		return loc, constants.ErrNodeNotFound
	}
	return loc, nil
}
