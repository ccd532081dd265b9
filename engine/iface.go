package engine

import (
	"reflect"
	"unsafe"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey returns an integer identity for t. reflect.Type values for the
// same type share one *rtype, so its address is stable for the process.
func typeKey(t reflect.Type) uint64 {
	return uint64(uintptr((*iface)(unsafe.Pointer(&t)).data))
}
