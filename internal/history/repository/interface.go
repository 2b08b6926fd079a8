package repository

import "context"

// Repository stores one opaque record per owner. The record holds the whole
// serialized history list.
//
//go:generate mockery --name Repository
type Repository interface {
	// Load returns ErrRecordNotFound when the owner has no record yet.
	Load(ctx context.Context, owner string) ([]byte, error)
	Save(ctx context.Context, owner string, payload []byte) error
}
