package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidSeverity.Error() != "invalid severity" {
		t.Errorf("ErrInvalidSeverity has unexpected message: %s", ErrInvalidSeverity.Error())
	}
	if ErrSignpostUnknown.Error() != "unknown signpost id" {
		t.Errorf("ErrSignpostUnknown has unexpected message: %s", ErrSignpostUnknown.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidSeverity", ErrInvalidSeverity, 4001},
		{"InvalidMetadata", ErrInvalidMetadata, 4002},
		{"InvalidCapacity", ErrInvalidCapacity, 4003},
		{"SignpostUnknown", ErrSignpostUnknown, 4004},
		{"SignpostEnded", ErrSignpostEnded, 4005},
		{"SignpostMismatch", ErrSignpostNameMismatch, 4006},
		{"MetadataTooDeep", ErrMaxDepth, 4007},
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"ProducerFailed", ErrProducerFailed, 4220},
		{"SinkError", NewSinkError(1, "network", errors.New("boom")), 5001},
		{"TransportError", NewTransportError("app", "network", "info", errors.New("closed")), 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidCapacity), 4003},
		{"SignpostError", NewSignpostError("query", 7, "db", ErrSignpostEnded), 4005},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestSinkError(t *testing.T) {
	cause := errors.New("disk full")
	sinkErr := &SinkError{Token: 3, Category: "network", Err: cause}

	expectedErrMsg := `event sink 3 on "network" failed: disk full`
	if sinkErr.Error() != expectedErrMsg {
		t.Errorf("SinkError.Error() = %s, want %s", sinkErr.Error(), expectedErrMsg)
	}

	if !errors.Is(sinkErr, cause) {
		t.Errorf("errors.Is(sinkErr, cause) = false, want true")
	}
	if !errors.Is(sinkErr, ErrSinkFault) {
		t.Errorf("errors.Is(sinkErr, ErrSinkFault) = false, want true")
	}
	if !IsSinkFault(sinkErr) {
		t.Errorf("IsSinkFault(sinkErr) = false, want true")
	}

	fields := sinkErr.LogFields()
	if fields["sink_token"] != uint64(3) {
		t.Errorf("LogFields()[sink_token] = %v, want 3", fields["sink_token"])
	}
	if fields["error_code"] != CodeSinkFault {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeSinkFault)
	}
}

func TestSignpostError(t *testing.T) {
	sigErr := NewSignpostError("query", 9, "db", ErrSignpostNameMismatch)

	expectedErrMsg := `signpost "query" (id 9) on "db": signpost name mismatch`
	if sigErr.Error() != expectedErrMsg {
		t.Errorf("SignpostError.Error() = %s, want %s", sigErr.Error(), expectedErrMsg)
	}

	if !errors.Is(sigErr, ErrSignpostNameMismatch) {
		t.Errorf("errors.Is(sigErr, ErrSignpostNameMismatch) = false, want true")
	}
	if !IsSignpostOrderingFault(sigErr) {
		t.Errorf("IsSignpostOrderingFault(sigErr) = false, want true")
	}
	if IsSignpostOrderingFault(ErrSinkFault) {
		t.Errorf("IsSignpostOrderingFault(ErrSinkFault) = true, want false")
	}

	var typed *SignpostError
	if !errors.As(sigErr, &typed) {
		t.Fatalf("errors.As(sigErr, *SignpostError) = false, want true")
	}
	fields := typed.LogFields()
	if fields["error_code"] != CodeSignpostMismatch {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeSignpostMismatch)
	}
	if fields["signpost_id"] != uint64(9) {
		t.Errorf("LogFields()[signpost_id] = %v, want 9", fields["signpost_id"])
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("closed")
	trErr := NewTransportError("com.example.app", "network", "error", cause)

	expectedErrMsg := "transport rejected error line for com.example.app/network: closed"
	if trErr.Error() != expectedErrMsg {
		t.Errorf("TransportError.Error() = %s, want %s", trErr.Error(), expectedErrMsg)
	}
	if !errors.Is(trErr, cause) || !IsTransportFault(trErr) {
		t.Errorf("TransportError should match both its cause and ErrTransportFault")
	}
	if IsSinkFault(trErr) {
		t.Errorf("IsSinkFault(trErr) = true, want false")
	}
}

func TestPanicError(t *testing.T) {
	cause := errors.New("nil map")

	testCases := []struct {
		name      string
		recovered any
		expected  string
	}{
		{"Error", cause, "panic: nil map"},
		{"String", "bad state", "panic: bad state"},
		{"Other", 42, "panic: 42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := PanicError(tc.recovered)
			if err.Error() != tc.expected {
				t.Errorf("PanicError(%v) = %s, want %s", tc.recovered, err.Error(), tc.expected)
			}
		})
	}

	if !errors.Is(PanicError(cause), cause) {
		t.Errorf("PanicError should wrap error values")
	}
}
