package repo

import "errors"

// ErrItemNotFound is returned when an item id does not exist in the store.
var ErrItemNotFound = errors.New("item not found")

// ErrDuplicateName is returned when a reference insert loses a race
// against another insert of the same unique name. Callers should re-read.
var ErrDuplicateName = errors.New("name already exists")
