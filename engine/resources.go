package engine

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Resources holds one value per Go type that systems share: the game being
// played, input queues, dispatchers. Values are stored by pointer, so
// systems mutate them in place.
type Resources struct {
	entries *intmap.Map[uint64, any]
}

func NewResources() *Resources {
	return &Resources{
		entries: intmap.New[uint64, any](16),
	}
}

// AddResource stores value as the resource of type T, replacing any previous one.
func AddResource[T any](r *Resources, value *T) {
	r.entries.Put(typeKey(reflect.TypeFor[T]()), value)
}

// GetResource returns the resource of type T, or nil if none was added.
func GetResource[T any](r *Resources) *T {
	v, ok := r.entries.Get(typeKey(reflect.TypeFor[T]()))
	if !ok {
		return nil
	}
	return v.(*T)
}

// RemoveResource deletes the resource of type T.
func RemoveResource[T any](r *Resources) {
	r.entries.Del(typeKey(reflect.TypeFor[T]()))
}

// Resource is a system field giving access to a shared value of type T.
type Resource[T any] struct {
	resources *Resources
}

// Init binds the accessor to a resource set.
// This is called automatically by the Scheduler during system registration.
func (r *Resource[T]) Init(resources *Resources) {
	r.resources = resources
}

// Get returns the resource, or nil if it has not been added.
func (r *Resource[T]) Get() *T {
	if r.resources == nil {
		return nil
	}
	return GetResource[T](r.resources)
}

// Exists reports whether the resource has been added.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}
