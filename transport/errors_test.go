package transport

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeTimeout:    "timeout",
		ErrCodeConnection: "connection",
		ErrCodeStatus:     "status",
		ErrCodeDecode:     "decode",
		ErrorCode(99):     "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("code %d: expected %q, got %q", code, want, got)
		}
	}
}

func TestError_Message(t *testing.T) {
	e := NewStatusError(404, []byte(`{"error":"missing"}`))
	if got := e.Error(); got != "transport: status (HTTP 404): HTTP 404" {
		t.Errorf("unexpected message: %q", got)
	}

	cause := errors.New("dial refused")
	ce := NewConnectionError(cause)
	if got := ce.Error(); got != "transport: connection: dial refused" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(ce, cause) {
		t.Error("expected Unwrap to reach the cause")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	for _, code := range []int{200, 201, 204, 299} {
		if err := ClassifyStatusCode(code, nil); err != nil {
			t.Errorf("status %d must classify as success, got %v", code, err)
		}
	}
	for _, code := range []int{301, 400, 404, 429, 500, 503} {
		err := ClassifyStatusCode(code, []byte("body"))
		if err == nil {
			t.Errorf("status %d must classify as error", code)
			continue
		}
		if err.StatusCode != code || err.Code != ErrCodeStatus {
			t.Errorf("status %d: unexpected classification %+v", code, err)
		}
		if string(err.Body) != "body" {
			t.Errorf("status %d: body not preserved", code)
		}
	}
}

func TestPredicates(t *testing.T) {
	timeout := NewTimeoutError(errors.New("deadline"))
	conn := NewConnectionError(errors.New("refused"))
	status := NewStatusError(500, nil)

	if !IsTimeout(timeout) || IsTimeout(conn) {
		t.Error("IsTimeout misclassified")
	}
	if !IsConnection(conn) || IsConnection(status) {
		t.Error("IsConnection misclassified")
	}
	if !IsStatus(status) || IsStatus(timeout) {
		t.Error("IsStatus misclassified")
	}
	if IsTimeout(nil) || IsTimeout(errors.New("plain")) {
		t.Error("predicates must reject foreign errors")
	}

	wrapped := fmt.Errorf("call failed: %w", status)
	if !IsStatus(wrapped) {
		t.Error("predicates must see through wrapping")
	}
	if StatusCode(wrapped) != 500 {
		t.Errorf("expected 500 through wrapping, got %d", StatusCode(wrapped))
	}
	if StatusCode(errors.New("plain")) != 0 {
		t.Error("StatusCode must be 0 for foreign errors")
	}
}
