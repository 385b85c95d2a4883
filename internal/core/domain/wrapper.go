package domain

// Wrapper is one of the fixed deferred-access wrapper shapes a request type can take.
// Every shape is a single-argument generic type.
type Wrapper uint8

const (
	// WrapperProvider is inject.Provider[T].
	WrapperProvider Wrapper = iota + 1
	// WrapperLazy is inject.Lazy[T].
	WrapperLazy
	// WrapperMembersInjector is inject.MembersInjector[T].
	WrapperMembersInjector
	// WrapperProducer is inject.Producer[T].
	WrapperProducer
	// WrapperProduced is inject.Produced[T].
	WrapperProduced
	// WrapperFuture is inject.Future[T]. It is legal only as the result of a
	// production component accessor and is never reached by classification.
	WrapperFuture
)

// Wrappers returns every wrapper shape, including Future.
func Wrappers() []Wrapper {
	return []Wrapper{
		WrapperProvider,
		WrapperLazy,
		WrapperMembersInjector,
		WrapperProducer,
		WrapperProduced,
		WrapperFuture,
	}
}

// ClassifiableWrappers returns the shapes recognised at a general injection point,
// in the order they are tested.
func ClassifiableWrappers() []Wrapper {
	return []Wrapper{
		WrapperProvider,
		WrapperLazy,
		WrapperMembersInjector,
		WrapperProducer,
		WrapperProduced,
	}
}

// Kind returns the request kind a wrapper shape maps to.
func (w Wrapper) Kind() Kind {
	switch w {
	case WrapperProvider:
		return KindProvider
	case WrapperLazy:
		return KindLazy
	case WrapperMembersInjector:
		return KindMembersInjector
	case WrapperProducer:
		return KindProducer
	case WrapperProduced:
		return KindProduced
	case WrapperFuture:
		return KindFuture
	default:
		panic("domain: unknown wrapper shape")
	}
}

// String returns the name of the wrapper shape as used in configuration.
func (w Wrapper) String() string {
	switch w {
	case WrapperProvider:
		return "provider"
	case WrapperLazy:
		return "lazy"
	case WrapperMembersInjector:
		return "members_injector"
	case WrapperProducer:
		return "producer"
	case WrapperProduced:
		return "produced"
	case WrapperFuture:
		return "future"
	default:
		return "unknown"
	}
}
