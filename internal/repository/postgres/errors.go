package postgres

import (
	"errors"

	"github.com/lib/pq"

	"wealthmindset/internal/domain"
)

// storeError converts a driver error into a domain.StoreError so handlers can pass
// the datastore's native code, message and detail through verbatim.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &domain.StoreError{
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Detail:  pqErr.Detail,
		}
	}
	return &domain.StoreError{Message: err.Error()}
}
