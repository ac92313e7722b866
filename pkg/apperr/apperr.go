// Package apperr defines the error kinds surfaced by the API and their
// HTTP status and user-facing (Gujarati) messages.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindDuplicateMobile    Kind = "DuplicateMobile"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindUnauthorized       Kind = "Unauthorized"
	KindNotLoggedIn        Kind = "NotLoggedIn"
	KindUpstreamDetection  Kind = "UpstreamDetectionFailure"
	KindExport             Kind = "ExportFailure"
	KindInternal           Kind = "Internal"
)

// Sentinels for errors.Is.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrDuplicateMobile    = &Error{Kind: KindDuplicateMobile}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrNotLoggedIn        = &Error{Kind: KindNotLoggedIn}
	ErrUpstreamDetection  = &Error{Kind: KindUpstreamDetection}
	ErrExport             = &Error{Kind: KindExport}
)

const (
	MsgInvalidRequest     = "અમાન્ય વિનંતી"
	MsgDuplicateMobile    = "આ મોબાઇલ નંબર પહેલેથી જ અસ્તિત્વમાં છે"
	MsgInvalidCredentials = "અમાન્ય મોબાઇલ નંબર અથવા પાસવર્ડ"
	MsgInvalidAdmin       = "અમાન્ય યુઝરનેમ અથવા પાસવર્ડ"
	MsgUnauthorized       = "અનધિકૃત પ્રવેશ"
	MsgNotLoggedIn        = "કૃપા કરીને પહેલા લોગિન કરો"
	MsgUpstreamDetection  = "સ્કેન દરમિયાન ભૂલ આવી. કૃપા કરીને ફરી પ્રયાસ કરો."
	MsgExport             = "Excel નિકાસ નિષ્ફળ"
	MsgInternal           = "કંઈક ખોટું થયું. કૃપા કરીને ફરી પ્રયાસ કરો."
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so wrapped instances compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

func DuplicateMobile() error {
	return &Error{Kind: KindDuplicateMobile, Message: MsgDuplicateMobile}
}

func InvalidCredentials(msg string) error {
	return &Error{Kind: KindInvalidCredentials, Message: msg}
}

func Unauthorized() error { return &Error{Kind: KindUnauthorized, Message: MsgUnauthorized} }

func NotLoggedIn() error { return &Error{Kind: KindNotLoggedIn, Message: MsgNotLoggedIn} }

func UpstreamDetection(err error) error {
	return &Error{Kind: KindUpstreamDetection, Message: MsgUpstreamDetection, Err: err}
}

func Export(err error) error {
	return &Error{Kind: KindExport, Message: MsgExport, Err: err}
}

func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// Status maps an error to its HTTP status; unknown errors are 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindDuplicateMobile:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthorized, KindNotLoggedIn:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message; internals never leak.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return MsgInternal
	}
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindUnauthorized:
		return MsgUnauthorized
	case KindNotLoggedIn:
		return MsgNotLoggedIn
	case KindDuplicateMobile:
		return MsgDuplicateMobile
	case KindUpstreamDetection:
		return MsgUpstreamDetection
	case KindExport:
		return MsgExport
	}
	return MsgInvalidRequest
}
