package framework

import "reflect"

var clonerType = reflect.TypeFor[Cloner]()

// visit identifies a pointer already copied, so shared and cyclic references stay shared within the copy
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// deepCopy returns a copy of v that shares no mutable memory with it
// Cloner values, at any depth, copy themselves
// Unexported struct fields are copied by assignment; types carrying references there should implement Cloner
// Map keys, channels and funcs are shared
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	return copyValue(reflect.ValueOf(v), make(map[visit]reflect.Value)).Interface()
}

func copyValue(v reflect.Value, seen map[visit]reflect.Value) reflect.Value {
	if c, ok := cloneSelf(v); ok {
		return c
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.New(v.Type().Elem())
		seen[key] = out
		out.Elem().Set(copyValue(v.Elem(), seen))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(copyValue(v.Elem(), seen))
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(copyValue(v.Index(i), seen))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			out.Index(i).Set(copyValue(v.Index(i), seen))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyValue(iter.Value(), seen))
		}
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := range v.NumField() {
			if f := out.Field(i); f.CanSet() {
				f.Set(copyValue(v.Field(i), seen))
			}
		}
		return out
	}
	return v
}

// cloneSelf applies Cloner when v implements it and the result fits v's type
func cloneSelf(v reflect.Value) (reflect.Value, bool) {
	if !v.IsValid() || v.Kind() == reflect.Interface || !v.CanInterface() || !v.Type().Implements(clonerType) {
		return reflect.Value{}, false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return v, true
	}
	c := reflect.ValueOf(v.Interface().(Cloner).CloneValue())
	if !c.IsValid() || !c.Type().AssignableTo(v.Type()) {
		return reflect.Value{}, false
	}
	out := reflect.New(v.Type()).Elem()
	out.Set(c)
	return out, true
}
