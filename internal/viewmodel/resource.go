// Package viewmodel assembles server data into per-page view models. Each
// page method issues its resource queries through the shared query cache,
// independent queries in parallel and dependent ones gated on their parent,
// and returns one object carrying every resource's data or error. Mutation
// wrappers call the accessor, then invalidate exactly the cache subtrees
// the change can affect. This layer is UI-agnostic: it never formats
// messages and never touches notifications.
package viewmodel

import "errors"

// Resource is the outcome of one cache-backed query. The error never
// serializes; pages surface failures through their state envelope instead.
type Resource[T any] struct {
	Data T     `json:"data"`
	Err  error `json:"-"`
}

// OK reports whether the query settled without error.
func (r Resource[T]) OK() bool { return r.Err == nil }

func resolved[T any](v T, err error) Resource[T] {
	if err != nil {
		var zero T
		return Resource[T]{Data: zero, Err: err}
	}
	return Resource[T]{Data: v}
}

func anyError(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			return true
		}
	}
	return false
}

var errGateNotReady = errors.New("parent query not settled")
