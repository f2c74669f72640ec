// SPDX-License-Identifier: MIT

package glm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cvrsim/matrix"
)

var (
	// ErrSingularDesign reports that XᵗX could not be inverted.
	// It wraps matrix.ErrSingular.
	ErrSingularDesign = fmt.Errorf("glm: singular design matrix: %w", matrix.ErrSingular)

	// ErrLength reports that y does not have one value per design row.
	ErrLength = errors.New("glm: observation length mismatch")
)
