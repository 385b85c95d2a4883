package app

import (
	"context"

	"go.trai.ch/syringe/inject"
)

type DB struct{}

type Cache struct{}

type User struct{}

type Handler interface {
	Handle(ctx context.Context) error
}

type Service struct{}

// NewService creates a Service.
//
//syringe:inject
//syringe:qualifier(db) Named("primary")
//syringe:nullable(cache)
func NewService(db *DB, cache inject.Lazy[*Cache], routes map[string]Handler) *Service {
	return &Service{}
}

type Repo[T any] struct{}

//syringe:inject
func NewRepo[T any](db *DB, items inject.Provider[T]) *Repo[T] {
	return &Repo[T]{}
}

func newUnused() *Service {
	return &Service{}
}

//syringe:members
type Screen struct{}

//syringe:component
type App interface {
	Service() *Service
	//syringe:qualifier Named("admin")
	Users() *Repo[User]
	Inject(s *Screen)
	Screens() inject.MembersInjector[*Screen]
}

//syringe:production_component
type Pipeline interface {
	Result() inject.Future[*Service]
	Users() *Repo[User]
}

type A struct{}

type B struct{}

type Pair[X, Y any] struct{}

//syringe:inject
func NewPair[Y, X any](x X, y Y) *Pair[X, Y] {
	return &Pair[X, Y]{}
}

//syringe:component
type Pairs interface {
	Pair() *Pair[A, B]
}

type Worker struct{}

//syringe:inject
//syringe:nullable
//syringe:qualifier Named("svc")
func NewWorker(*DB, string) *Worker {
	return &Worker{}
}

type Box[T any] struct{}

//syringe:inject
func NewBox[T any](item T) *Box[T] {
	return &Box[T]{}
}
