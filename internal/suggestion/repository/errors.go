package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert suggestion")
	ErrFailedToGet    = errors.New("failed to get suggestion")
	ErrFailedToList   = errors.New("failed to list suggestions")
	ErrFailedToUpdate = errors.New("failed to update suggestion")
)
