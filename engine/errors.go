// SPDX-License-Identifier: MIT

package engine

import "errors"

// ErrNotReady is returned by actions that need a prior successful Recompute.
var ErrNotReady = errors.New("engine: no configuration applied yet")
