package host

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
)

// fieldInfo locates one exported script field.
type fieldInfo struct {
	Name  string
	Key   string
	Index int
	Type  reflect.Type
}

// fieldCache memoizes the settable fields of each script type. Fields are
// keyed by their `script:"name"` tag, or by the Go field name when untagged.
type fieldCache struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]fieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{byType: make(map[reflect.Type][]fieldInfo)}
}

func (fc *fieldCache) fields(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.byType[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cached, ok := fc.byType[t]; ok {
		return cached
	}

	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		key := f.Tag.Get("script")
		if key == "-" {
			continue
		}
		if key == "" {
			key = f.Name
		}
		fields = append(fields, fieldInfo{Name: f.Name, Key: key, Index: i, Type: f.Type})
	}
	fc.byType[t] = fields
	return fields
}

// lookup finds a field by exact key, then by case-insensitive key or Go name.
func (fc *fieldCache) lookup(t reflect.Type, name string) (fieldInfo, bool) {
	fields := fc.fields(t)
	for _, f := range fields {
		if f.Key == name {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.Key, name) || strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return fieldInfo{}, false
}

// structOf dereferences a script instance to its struct value.
func structOf(inst any) (reflect.Value, bool) {
	v := reflect.ValueOf(inst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, false
	}
	v = v.Elem()
	return v, v.Kind() == reflect.Struct
}

func (fc *fieldCache) field(inst any, name string) (reflect.Value, error) {
	sv, ok := structOf(inst)
	if !ok {
		return reflect.Value{}, fmt.Errorf("host: script instance %T is not a struct pointer: %w", inst, ErrFieldType)
	}
	f, ok := fc.lookup(sv.Type(), name)
	if !ok {
		return reflect.Value{}, fmt.Errorf("host: %s.%s: %w", sv.Type().Name(), name, ErrUnknownField)
	}
	return sv.Field(f.Index), nil
}

func (fc *fieldCache) getBool(inst any, name string) (bool, error) {
	fv, err := fc.field(inst, name)
	if err != nil {
		return false, err
	}
	if fv.Kind() != reflect.Bool {
		return false, fmt.Errorf("host: field %s is %s, not bool: %w", name, fv.Type(), ErrFieldType)
	}
	return fv.Bool(), nil
}

func (fc *fieldCache) setBool(inst any, name string, value bool) error {
	fv, err := fc.field(inst, name)
	if err != nil {
		return err
	}
	if fv.Kind() != reflect.Bool {
		return fmt.Errorf("host: field %s is %s, not bool: %w", name, fv.Type(), ErrFieldType)
	}
	fv.SetBool(value)
	return nil
}

// set assigns value to the named field, converting between numeric kinds when
// the conversion is exact.
func (fc *fieldCache) set(inst any, name string, value any) error {
	fv, err := fc.field(inst, name)
	if err != nil {
		return err
	}
	if err := assign(fv, value); err != nil {
		return fmt.Errorf("host: field %s: %w", name, err)
	}
	return nil
}

func assign(fv reflect.Value, value any) error {
	src := reflect.ValueOf(value)
	if !src.IsValid() {
		return fmt.Errorf("nil value: %w", ErrFieldType)
	}

	switch fv.Kind() {
	case reflect.Bool:
		if src.Kind() == reflect.Bool {
			fv.SetBool(src.Bool())
			return nil
		}
	case reflect.String:
		if src.Kind() == reflect.String {
			fv.SetString(src.String())
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := asInt(src); ok && !fv.OverflowInt(n) {
			fv.SetInt(n)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := asInt(src); ok && n >= 0 && !fv.OverflowUint(uint64(n)) {
			fv.SetUint(uint64(n))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := asFloat(src); ok {
			fv.SetFloat(f)
			return nil
		}
	}
	return fmt.Errorf("cannot assign %T to %s: %w", value, fv.Type(), ErrFieldType)
}

func asInt(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		return int64(u), u <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return int64(f), f == math.Trunc(f) && math.Abs(f) < math.MaxInt64
	}
	return 0, false
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	}
	return 0, false
}

// ScriptField is a snapshot of one exported field of a script instance.
type ScriptField struct {
	Name  string
	Key   string
	Value any
}

func (fc *fieldCache) snapshot(inst any) []ScriptField {
	sv, ok := structOf(inst)
	if !ok {
		return nil
	}
	fields := fc.fields(sv.Type())
	out := make([]ScriptField, 0, len(fields))
	for _, f := range fields {
		out = append(out, ScriptField{Name: f.Name, Key: f.Key, Value: sv.Field(f.Index).Interface()})
	}
	return out
}
