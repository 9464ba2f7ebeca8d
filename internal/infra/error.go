package infra

import (
	"errors"
	"log/slog"

	"booking-widget/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError classifies a failed exchange with the reservation backend.
type UpstreamError struct {
	Kind UpstreamErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		// err already carries msg as its wrap prefix
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Upstream error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, msg: msg, err: err}
}

// kinded is implemented by transport-specific errors that classify themselves.
type kinded interface {
	Kind() UpstreamErrorKind
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind() == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindTransport         UpstreamErrorKind = "TRANSPORT"
	KindHTTPStatus        UpstreamErrorKind = "HTTP_STATUS"
	KindMalformedResponse UpstreamErrorKind = "MALFORMED_RESPONSE"
)
