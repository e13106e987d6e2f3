package services

import (
	"errors"
	"fmt"

	"github.com/you/jobsvc/domain"
)

// storeErr maps repository sentinels onto pipeline errors; anything else is
// wrapped and reaches the sink as Unexpected.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrVersionConflict):
		return domain.Conflict("Record was modified concurrently, please retry").At(op)
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// exists reports whether a lookup found a record; lookup faults other than
// not-found are returned.
func exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrRecordNotFound):
		return false, nil
	}
	return false, err
}
