package service

import (
	"errors"

	"spendaily/internal/repository"
)

var (
	// ErrNotFound covers both a missing entity and one hidden from the
	// requester; handlers map it to 404.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the acting user does not own the entity.
	// The operation is aborted before any write and no event is emitted.
	ErrPermissionDenied = errors.New("permission denied")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func translateStoreErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
