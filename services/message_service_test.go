package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nightsky.wedding/repositories"
)

func TestPostMessageRequiresContent(t *testing.T) {
	store := newTestStore(t)
	messageService := NewMessageService(store)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := messageService.Post(ctx, PostMessageInput{Content: content})
		if !errors.Is(err, ErrMessageContentRequired) {
			t.Errorf("Post(%q) = %v, want ErrMessageContentRequired", content, err)
		}
	}
}

func TestPostMessageLengthLimits(t *testing.T) {
	store := newTestStore(t)
	messageService := NewMessageService(store)
	ctx := context.Background()

	_, err := messageService.Post(ctx, PostMessageInput{Content: strings.Repeat("x", 1001)})
	if !errors.Is(err, ErrMessageContentTooLong) {
		t.Errorf("long content: got %v, want ErrMessageContentTooLong", err)
	}

	longSender := strings.Repeat("s", 121)
	_, err = messageService.Post(ctx, PostMessageInput{Content: "hi", Sender: &longSender})
	if !errors.Is(err, ErrMessageSenderTooLong) {
		t.Errorf("long sender: got %v, want ErrMessageSenderTooLong", err)
	}
}

func TestPostMessageDefaultsAndTrimming(t *testing.T) {
	store := newTestStore(t)
	messageService := NewMessageService(store)
	ctx := context.Background()

	message, err := messageService.Post(ctx, PostMessageInput{Content: "  congratulations!  "})
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}
	if message.Content != "congratulations!" {
		t.Errorf("content = %q, want trimmed", message.Content)
	}
	if !message.Publish {
		t.Error("publish should default to true")
	}
	if message.Anonymous {
		t.Error("anonymous should default to false")
	}
}

func TestPostMessageUnknownGuest(t *testing.T) {
	store := newTestStore(t)
	messageService := NewMessageService(store)
	guestID := "not-a-guest"

	_, err := messageService.Post(context.Background(), PostMessageInput{Content: "hi", GuestID: &guestID})
	if !errors.Is(err, ErrMessageUnknownGuest) {
		t.Fatalf("Post() = %v, want ErrMessageUnknownGuest", err)
	}
}

func TestPostMessageRecordsActor(t *testing.T) {
	store := newTestStore(t)
	parentID, _, _ := seedFamily(t, store)
	messageService := NewMessageService(store)
	ctx := context.Background()

	anon := true
	_, err := messageService.Post(ctx, PostMessageInput{
		Content:   "see you there",
		GuestID:   &parentID,
		Anonymous: &anon,
	})
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	messages, err := messageService.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].GuestID == nil || *messages[0].GuestID != parentID {
		t.Error("actor id was not recorded")
	}
	if !messages[0].Anonymous {
		t.Error("anonymous flag was not stored")
	}
}

func TestModerateFlags(t *testing.T) {
	store := newTestStore(t)
	messageService := NewMessageService(store)
	ctx := context.Background()

	message, err := messageService.Post(ctx, PostMessageInput{Content: "hello"})
	if err != nil {
		t.Fatalf("Post() error: %v", err)
	}

	unpublish := false
	if err := messageService.Moderate(ctx, message.ID, &unpublish, nil); err != nil {
		t.Fatalf("Moderate() error: %v", err)
	}
	messages, _ := messageService.List(ctx)
	if messages[0].Publish {
		t.Error("publish flag not cleared")
	}
	if messages[0].Anonymous {
		t.Error("anonymous flag changed without being requested")
	}

	if err := messageService.Moderate(ctx, "missing", &unpublish, nil); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Moderate(missing) = %v, want ErrNotFound", err)
	}
}
