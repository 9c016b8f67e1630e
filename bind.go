package gazelle

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Binding handlers decode request data into a typed value and hand it to a
// handler factory. A malformed body, query, or form never crashes the
// request: the Bind* forms return a *BindError for the adapter's error
// handler, and the TryBind* forms route the failure to an explicit
// caller-supplied handler instead.

// BindBody decodes the request body with the given decoder into a new *T
// and runs f with it. A decode failure is returned as a *BindError
// wrapping ErrBindBody.
func BindBody[T any](dec Decoder, f func(v *T) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		v, err := decodeBody[T](c, dec)
		if err != nil {
			return NotHandled, err
		}
		return f(v)(c, next)
	}
}

// TryBindBody is BindBody with an explicit failure handler: a decode
// failure runs onError(err) instead of surfacing an error.
func TryBindBody[T any](dec Decoder, onError func(err error) Handler, f func(v *T) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		v, err := decodeBody[T](c, dec)
		if err != nil {
			return onError(err)(c, next)
		}
		return f(v)(c, next)
	}
}

// BindJSON decodes a JSON request body into *T and runs f with it.
func BindJSON[T any](f func(v *T) Handler) Handler {
	return BindBody(JSONCodec{}, f)
}

// TryBindJSON is BindJSON with an explicit failure handler.
func TryBindJSON[T any](onError func(err error) Handler, f func(v *T) Handler) Handler {
	return TryBindBody(JSONCodec{}, onError, f)
}

// BindXML decodes an XML request body into *T and runs f with it.
func BindXML[T any](f func(v *T) Handler) Handler {
	return BindBody(XMLCodec{}, f)
}

// TryBindXML is BindXML with an explicit failure handler.
func TryBindXML[T any](onError func(err error) Handler, f func(v *T) Handler) Handler {
	return TryBindBody(XMLCodec{}, onError, f)
}

// BindQuery binds query string parameters to the fields of a new *T using
// "query" struct tags and runs f with it. A value that fails to parse into
// its field type is a *BindError wrapping ErrBindQuery.
func BindQuery[T any](f func(v *T) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		v := new(T)
		if err := bindValues(v, c.Request.URL.Query(), "query", ErrBindQuery); err != nil {
			return NotHandled, err
		}
		return f(v)(c, next)
	}
}

// BindForm binds urlencoded or multipart form fields to the fields of a
// new *T using "form" struct tags and runs f with it. Parse failures are a
// *BindError wrapping ErrBindForm.
func BindForm[T any](f func(v *T) Handler) Handler {
	return func(c *Context, next Next) (Outcome, error) {
		if err := c.Request.ParseForm(); err != nil {
			return NotHandled, bindError(ErrBindForm, err)
		}
		v := new(T)
		if err := bindValues(v, c.Request.PostForm, "form", ErrBindForm); err != nil {
			return NotHandled, err
		}
		return f(v)(c, next)
	}
}

func decodeBody[T any](c *Context, dec Decoder) (*T, error) {
	v := new(T)
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return v, nil
	}
	if err := dec.Decode(c.Request.Body, v); err != nil {
		return nil, bindError(ErrBindBody, err)
	}
	return v, nil
}

// bindValues populates tagged struct fields from url.Values, with an
// optional "default" tag for absent keys.
func bindValues(target any, values url.Values, tag string, kind error) error {
	v := reflect.ValueOf(target).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Tag.Get(tag)
		if name == "" {
			continue
		}

		val := values.Get(name)
		if val == "" {
			val = f.Tag.Get("default")
		}
		if val == "" {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return bindError(kind, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value from a string, supporting common types.
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	//exhaustive:ignore
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported bind type: %s", field.Type())
	}
	return nil
}
