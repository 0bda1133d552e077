// Package services contains the server-side business rules layered over the
// entity store: registration and login, recipe search, the ingredient
// catalog, board visibility and image upload presigning.
//
// Services receive already shape-validated input from the transport layer
// and re-check the rules the store does not enforce. Errors match the
// sentinels in internal/common.
package services

import (
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

// page applies offset and limit to n items and returns the slice bounds.
// A non-positive limit means no limit.
func page(n, offset, limit int) (int, int) {
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && limit < n-offset {
		end = offset + limit
	}
	return offset, end
}
