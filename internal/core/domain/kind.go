package domain

import "go.trai.ch/zerr"

// Kind is the kind of value a dependency request asks for.
type Kind uint8

const (
	// KindInstance is a default request for an instance, e.g. Foo.
	KindInstance Kind = iota
	// KindProvider is a request for an inject.Provider, e.g. inject.Provider[Foo].
	KindProvider
	// KindLazy is a request for an inject.Lazy, e.g. inject.Lazy[Foo].
	KindLazy
	// KindMembersInjector is a request for an inject.MembersInjector, e.g. inject.MembersInjector[Foo].
	KindMembersInjector
	// KindProducer is a request for an inject.Producer, e.g. inject.Producer[Foo].
	KindProducer
	// KindProduced is a request for an inject.Produced, e.g. inject.Produced[Foo].
	KindProduced
	// KindFuture is a request for an inject.Future, e.g. inject.Future[Foo].
	// Only production component accessors can issue it.
	KindFuture
)

var kindNames = [...]string{
	KindInstance:        "instance",
	KindProvider:        "provider",
	KindLazy:            "lazy",
	KindMembersInjector: "members_injector",
	KindProducer:        "producer",
	KindProduced:        "produced",
	KindFuture:          "future",
}

// Kinds returns every request kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindInstance,
		KindProvider,
		KindLazy,
		KindMembersInjector,
		KindProducer,
		KindProduced,
		KindFuture,
	}
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, zerr.With(zerr.New("unknown request kind"), "kind", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return zerr.With(zerr.New("unknown request kind"), "kind", string(text))
}
