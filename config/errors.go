// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalid is returned by Validate for any out-of-domain value.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownName is returned when an enum name does not parse.
	ErrUnknownName = errors.New("config: unknown name")
)
