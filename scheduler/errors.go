package scheduler

import "errors"

// ErrAlreadyRunning is returned by Run if the container's worker has
// already been started.
var ErrAlreadyRunning = errors.New("scheduler: container is already running")
