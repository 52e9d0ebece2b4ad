package horn

import (
	"fmt"
	"reflect"

	"github.com/ichiban/horn/term"
)

func scan(bs []Binding, out interface{}) error {
	o := reflect.ValueOf(out)
	switch o.Kind() {
	case reflect.Map:
		if o.IsNil() {
			return fmt.Errorf("nil map: %s", o.Type())
		}
		if o.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("invalid key type: %s", o.Type().Key())
		}
		for _, b := range bs {
			v, err := convert(b.Value, o.Type().Elem())
			if err != nil {
				return fmt.Errorf("%s: %w", b.Name, err)
			}
			o.SetMapIndex(reflect.ValueOf(b.Name).Convert(o.Type().Key()), v)
		}
		return nil
	case reflect.Ptr:
		o = o.Elem()
		if o.Kind() != reflect.Struct {
			return fmt.Errorf("invalid kind: %s", o.Kind())
		}
		t := o.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, ok := f.Tag.Lookup("horn"); ok {
				name = tag
			}
			val, ok := lookup(bs, name)
			if !ok {
				continue
			}
			v, err := convert(val, f.Type)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			o.Field(i).Set(v)
		}
		return nil
	default:
		return fmt.Errorf("invalid kind: %s", o.Kind())
	}
}

func lookup(bs []Binding, name string) (term.Term, bool) {
	for _, b := range bs {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

func convert(t term.Term, typ reflect.Type) (reflect.Value, error) {
	if reflect.TypeOf(t).AssignableTo(typ) {
		v := reflect.New(typ).Elem()
		v.Set(reflect.ValueOf(t))
		return v, nil
	}

	v := reflect.New(typ).Elem()
	switch typ.Kind() {
	case reflect.String:
		switch t := t.(type) {
		case term.Atom:
			v.SetString(string(t))
			return v, nil
		case term.Integer:
			v.SetString(string(t))
			return v, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := t.(term.Integer); ok {
			n, err := i.Int64()
			if err != nil || v.OverflowInt(n) {
				return reflect.Value{}, &TypeError{ValidType: typ.String(), Culprit: t}
			}
			v.SetInt(n)
			return v, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := t.(term.Integer); ok {
			n, err := i.Int64()
			if err != nil || n < 0 || v.OverflowUint(uint64(n)) {
				return reflect.Value{}, &TypeError{ValidType: typ.String(), Culprit: t}
			}
			v.SetUint(uint64(n))
			return v, nil
		}
	}
	return reflect.Value{}, &TypeError{ValidType: typ.String(), Culprit: t}
}
