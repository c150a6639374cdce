package support

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"interpill/gateway/pkg/proxy/types"
)

var (
	validate   *validator.Validate
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
)

// A single validator instance caches struct parsing.
func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := validate.RegisterValidation("supportemail", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return emailRegex.MatchString(str)
	})
	if err != nil {
		panic(err)
	}
}

// SupportMessage is the body of a support form submission.
type SupportMessage struct {
	From    string `json:"from" validate:"required,supportemail"`
	Message string `json:"message" validate:"required"`
}

// DecodeMessage parses a support request body. A body that is not a JSON
// object with string members is "bad json"; missing members decode as blank
// and are caught by Validate.
func DecodeMessage(raw []byte) (SupportMessage, error) {
	var msg SupportMessage
	if len(bytes.TrimSpace(raw)) == 0 {
		return msg, badJSON(errors.New("empty body"))
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, badJSON(err)
	}
	return msg, nil
}

// Normalize returns msg with both fields trimmed.
func (m SupportMessage) Normalize() SupportMessage {
	return SupportMessage{
		From:    strings.TrimSpace(m.From),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks a normalized message. Blank fields are reported before a
// malformed sender address.
func (m SupportMessage) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return types.NewInternalError(fmt.Errorf("validation: %w", err))
	}

	msg := types.MsgInvalidEmail
	for _, ve := range validationErrors {
		if ve.Tag() == "required" {
			msg = types.MsgMissingFields
			break
		}
	}
	return &types.GatewayError{
		Kind:    types.KindValidation,
		Message: msg,
		Cause:   err,
	}
}

func badJSON(cause error) *types.GatewayError {
	return &types.GatewayError{
		Kind:    types.KindValidation,
		Message: types.MsgBadJSON,
		Cause:   cause,
	}
}
