package entities

import (
	"errors"
	"fmt"
	"testing"
)

func TestSession_IsAnonymous(t *testing.T) {
	if !Anonymous().IsAnonymous() {
		t.Fatalf("anonymous session should be anonymous")
	}
	if !(Session{Authenticated: true}).IsAnonymous() {
		t.Fatalf("authenticated without user id should be anonymous")
	}
	if (Session{Authenticated: true, UserID: "u1"}).IsAnonymous() {
		t.Fatalf("authenticated user should not be anonymous")
	}
}

func TestSessionChanged_Transitions(t *testing.T) {
	user := Session{Authenticated: true, UserID: "u1"}

	in := SessionChanged{Previous: Anonymous(), Current: user}
	if !in.SignedIn() || in.SignedOut() {
		t.Fatalf("expected sign in, got %+v", in)
	}
	out := SessionChanged{Previous: user, Current: Anonymous()}
	if out.SignedIn() || !out.SignedOut() {
		t.Fatalf("expected sign out, got %+v", out)
	}
	same := SessionChanged{Previous: user, Current: user}
	if same.SignedIn() || same.SignedOut() {
		t.Fatalf("expected no transition, got %+v", same)
	}
}

func TestRemoteError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("wrapped: %w", NewRemoteError(RemoteUnreachable, "fetch_all", cause))

	if !errors.Is(err, ErrRemote) {
		t.Fatalf("expected errors.Is ErrRemote")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if !IsRemoteKind(err, RemoteUnreachable) || IsRemoteKind(err, RemoteServerFault) {
		t.Fatalf("unexpected kind match for %v", err)
	}
	if IsRemoteKind(cause, RemoteUnreachable) {
		t.Fatalf("plain error is not a remote error")
	}
}

func TestLocalStoreError(t *testing.T) {
	cause := errors.New("disk full")
	err := &LocalStoreError{Op: "replace_all", Err: cause}
	if !errors.Is(err, ErrLocalStore) || !errors.Is(err, cause) {
		t.Fatalf("unexpected matching for %v", err)
	}
	if err.Error() != "local store replace_all: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":     PaymentStatusApproved,
		"rejected":     PaymentStatusRejected,
		"in_process":   PaymentStatusPending,
		"":             PaymentStatusPending,
		"charged_back": PaymentStatusRejected,
	}
	for in, want := range cases {
		if got := PaymentStatusFromProvider(in); got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}
