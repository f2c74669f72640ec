// SPDX-License-Identifier: MIT

package design

import "errors"

// ErrNoSamples is returned when Build receives an empty time grid.
var ErrNoSamples = errors.New("design: no samples")
