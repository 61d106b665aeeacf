// Package mocks provides centralized mock implementations for testing.
//
// Store mocks expose one function field per interface method (for example
// GetByIDFn); an unset field makes the method return zero values. The user
// store is the exception and is built on testify/mock so call expectations can
// be asserted.
//
// Usage:
//
//	trails := &mocks.MockTrailStore{
//	    GetByIDFn: func(ctx context.Context, id int64) (*domain.Trail, error) {
//	        return nil, store.ErrTrailNotFound
//	    },
//	}
package mocks
