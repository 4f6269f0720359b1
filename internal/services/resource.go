// Package services wraps the API client with one typed adapter per entity.
package services

import (
	"context"
	"fmt"

	"github.com/YamileOchoa/Hospital-System/internal/apiclient"
)

// keyed is satisfied by pointers to entities whose identifier the server
// assigns.
type keyed[T any] interface {
	*T
	SetID(int64)
}

// resource is the CRUD adapter for one collection path.
type resource[T any, PT keyed[T]] struct {
	api  *apiclient.Client
	path string
}

func newResource[T any, PT keyed[T]](api *apiclient.Client, path string) resource[T, PT] {
	return resource[T, PT]{api: api, path: path}
}

func (r resource[T, PT]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// List fetches the whole collection. The result is never nil.
func (r resource[T, PT]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.api.Get(ctx, r.path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r resource[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.api.Get(ctx, r.itemPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts to the collection path and returns the stored record.
func (r resource[T, PT]) Create(ctx context.Context, in *T) (*T, error) {
	var out T
	if err := r.api.Post(ctx, r.path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update puts to the item path of id. The record's own id is overwritten
// with id so the body and the URL always agree.
func (r resource[T, PT]) Update(ctx context.Context, id int64, in *T) (*T, error) {
	PT(in).SetID(id)
	var out T
	if err := r.api.Put(ctx, r.itemPath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T, PT]) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, r.itemPath(id))
}
