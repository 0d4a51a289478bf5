// Package clicfg copies urfave/cli flag values onto struct fields tagged
// with `flag:"<name>"`.
package clicfg

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/urfave/cli/v3"
)

var ErrCannotBindFlags = errors.New("cannot bind flags")

func Bind(c *cli.Command, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: expected pointer to struct, got %T", ErrCannotBindFlags, target)
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: expected pointer to struct, got pointer to %s", ErrCannotBindFlags, v.Kind())
	}

	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if !value.CanSet() {
			continue
		}

		name := field.Tag.Get("flag")
		if name == "" {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			value.SetString(c.String(name))
		case reflect.Bool:
			value.SetBool(c.Bool(name))
		case reflect.Int, reflect.Int64:
			value.SetInt(int64(c.Int(name)))
		default:
			return fmt.Errorf("%w: unsupported type %s for flag %s", ErrCannotBindFlags, field.Type.Kind(), name)
		}
	}

	return nil
}
