package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// report json field names instead of Go field names
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return val
}

// ErrNotJSON is returned for a wrong content type or an unparseable body.
func ErrNotJSON() error { return domain.ErrValidation("Not a JSON") }

// IsJSONContentType accepts application/json with any parameters.
func IsJSONContentType(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// DecodeAny reads one JSON value of any shape. An empty body yields nil.
func DecodeAny(r *http.Request) (any, error) {
	if !IsJSONContentType(r) {
		return nil, ErrNotJSON()
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, ErrNotJSON()
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, ErrNotJSON()
	}
	// Disallow trailing data: {}{}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrNotJSON()
	}
	return out, nil
}

// DecodeObject reads a JSON object body. Anything else is "Not a JSON".
func DecodeObject(r *http.Request) (map[string]any, error) {
	body, err := DecodeAny(r)
	if err != nil {
		return nil, err
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, ErrNotJSON()
	}
	return obj, nil
}

// Bind copies a decoded object into dst and runs its validate tags. Unknown
// keys are ignored.
func Bind(obj map[string]any, dst any) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return ErrNotJSON()
	}
	if err := json.Unmarshal(b, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return domain.ErrValidationMeta("invalid field type", map[string]string{
				te.Field: "must be " + te.Type.String(),
			})
		}
		return ErrNotJSON()
	}
	return Struct(dst)
}

// Struct runs validate tags and reports the first failure, "Missing <field>"
// for required fields.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrValidation(err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.ErrValidationMeta("Missing "+fe.Field(), map[string]string{fe.Field(): "required"})
	default:
		return domain.ErrValidationMeta("invalid field", map[string]string{
			fe.Field(): fmt.Sprintf("failed %s", fe.Tag()),
		})
	}
}
