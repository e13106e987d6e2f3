package domain

import "errors"

// Resource names used in ownership failures.
const (
	ResourceAccount     = "account"
	ResourceCompany     = "company"
	ResourceJob         = "job"
	ResourceApplication = "application"
)

// RequireOwner fails with NotFoundOrUnauthorized unless actorID owns the resource.
// The failure is identical to the one returned for a missing resource.
func RequireOwner(resource, resourceID, ownerID, actorID string) error {
	if ownerID == "" || actorID == "" || ownerID != actorID {
		return NotFoundOrUnauthorized(resource, resourceID)
	}
	return nil
}

// HideMissing turns ErrRecordNotFound into the ownership failure for resource.
// Other errors pass through.
func HideMissing(err error, resource, resourceID string) error {
	if errors.Is(err, ErrRecordNotFound) {
		return NotFoundOrUnauthorized(resource, resourceID)
	}
	return err
}
