package chat_test

import (
	"context"
	"errors"
	"testing"
	"time"

	chatservice "github.com/pranavthakur-code/get-health-help/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chatservice.NewService(chatservice.Options{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID())
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID() != session.ID() {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID(), session.ID())
	}
	if n := len(got.Messages()); n != 1 {
		t.Fatalf("expected welcome message only, got %d", n)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chatservice.NewService(chatservice.Options{})
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Submit(ctx, "missing", "headache"); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound from Submit, got %v", err)
	}
}

func TestServiceDisposeSession(t *testing.T) {
	svc := chatservice.NewService(chatservice.Options{ThinkingDelay: time.Hour})
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	accepted, err := svc.Submit(ctx, session.ID(), "headache")
	if err != nil || !accepted {
		t.Fatalf("Submit = %v, %v", accepted, err)
	}

	if err := svc.DisposeSession(ctx, session.ID()); err != nil {
		t.Fatalf("DisposeSession err: %v", err)
	}
	if !session.Disposed() {
		t.Fatal("expected session to be disposed")
	}
	if _, err := svc.GetSession(ctx, session.ID()); err == nil {
		t.Fatal("expected disposed session to be forgotten")
	}
	if err := svc.DisposeSession(ctx, session.ID()); !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second dispose, got %v", err)
	}
}

func TestServiceSweepRemovesIdleSessions(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := chatservice.NewService(chatservice.Options{Now: clock, ThinkingDelay: time.Hour})
	ctx := context.Background()

	stale, _ := svc.CreateSession(ctx)
	now = now.Add(20 * time.Minute)
	busy, _ := svc.CreateSession(ctx)
	busy.Submit("fever")
	now = now.Add(20 * time.Minute)
	fresh, _ := svc.CreateSession(ctx)

	if removed := svc.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 swept session, got %d", removed)
	}
	if !stale.Disposed() {
		t.Fatal("expected stale session disposed")
	}
	if busy.Disposed() || fresh.Disposed() {
		t.Fatal("active sessions were swept")
	}
	if svc.Len() != 2 {
		t.Fatalf("expected 2 live sessions, got %d", svc.Len())
	}

	svc.Close()
	if svc.Len() != 0 || !busy.Disposed() {
		t.Fatal("Close should dispose every session")
	}
}
