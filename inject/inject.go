// Package inject declares the wrapper types written at injection points.
//
// A parameter of an inject constructor or the result of a component method names
// what it depends on. Using a plain type requests an instance; wrapping it in one
// of the types below requests access to the value in a different way:
//
//	//syringe:inject
//	func NewServer(cfg Config, db inject.Provider[*sql.DB], cache inject.Lazy[Cache]) *Server
//
// The types are only recognised by their shape, so an implementation of the
// interfaces is up to the container that satisfies the requests.
package inject

import "context"

// Provider provides a new or shared instance of T on every call to Get.
type Provider[T any] interface {
	Get() T
}

// Lazy computes its value on the first call to Get and returns that same value on
// every later call.
type Lazy[T any] interface {
	Get() T
}

// MembersInjector injects the fields and methods of an existing instance of T.
type MembersInjector[T any] interface {
	InjectMembers(instance T)
}

// Producer starts the asynchronous computation of a T.
type Producer[T any] interface {
	Get() Future[T]
}

// Produced holds either a successfully produced T or the error that failed it.
type Produced[T any] interface {
	Get() (T, error)
}

// Future is the result of an asynchronous computation. Get blocks until the value
// is available or ctx is done.
type Future[T any] interface {
	Get(ctx context.Context) (T, error)
}
