package module

import "reflect"

// PortsOf finds a T among a module's ports
// a bundle that is itself a T wins; otherwise the first exported field holding a T
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if t, ok := bundle.(T); ok {
		return t, true
	}

	v := reflect.ValueOf(bundle)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanInterface() {
			continue
		}
		if t, ok := field.Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for api wiring, where a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	t, ok := PortsOf[T](m)
	if !ok {
		panic("module " + m.Name() + " does not provide the requested port")
	}
	return t
}
