package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct copies values into the struct pointed to by v.
// Field names come from tags (first tag in tagNames that is set wins) or the
// lower-cased Go field name. Nested structs are addressed with dotted keys,
// so a field tagged "birthDate" with a child tagged "month" reads
// "birthDate.month". Strings are stored verbatim.
func bindToStruct(v any, values map[string][]string, bindErr error, tagNames ...string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}
	return bindStruct(rv, "", values, bindErr, tagNames)
}

func bindStruct(rv reflect.Value, prefix string, values map[string][]string, bindErr error, tagNames []string) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := fieldName(sf, tagNames)
		if skip {
			continue
		}
		key := prefix + name

		if sf.Type.Kind() == reflect.Struct {
			if err := bindStruct(field, key+".", values, bindErr, tagNames); err != nil {
				return err
			}
			continue
		}

		fieldValues, ok := values[key]
		if !ok || len(fieldValues) == 0 {
			continue
		}
		if err := setFieldValue(field, sf.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, key, err)
		}
	}
	return nil
}

// fieldName resolves the parameter name for sf.
func fieldName(sf reflect.StructField, tagNames []string) (string, bool) {
	for _, tagName := range tagNames {
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		switch name {
		case "-":
			return "", true
		case "":
			continue
		default:
			return name, false
		}
	}
	return strings.ToLower(sf.Name), false
}

func setFieldValue(field reflect.Value, t reflect.Type, values []string) error {
	switch t.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(t.Elem()))
		}
		return setFieldValue(field.Elem(), t.Elem(), values)
	case reflect.Slice:
		slice := reflect.MakeSlice(t, len(values), len(values))
		for i, v := range values {
			if err := setFieldValue(slice.Index(i), t.Elem(), []string{v}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	value := values[0]
	switch t.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), t.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)
	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "t", "true", "on", "yes":
			field.SetBool(true)
		case "", "0", "f", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}
	default:
		return fmt.Errorf("unsupported type %s", t.Kind())
	}
	return nil
}
