package group

import "errors"

// ErrAlreadySpawned is returned by Spawn if the Builder has already been
// consumed by a prior call. A Builder is meant to be spawned exactly once.
var ErrAlreadySpawned = errors.New("group: builder has already been spawned")
