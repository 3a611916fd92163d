package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/house-hunter/marketplace-api/internal/core/ports"
)

type collectService struct {
	mu        sync.Mutex
	processed []ports.ActivityInput
	done      chan struct{}
	expect    int
}

func (s *collectService) Process(_ context.Context, in ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, in)
	if len(s.processed) == s.expect {
		close(s.done)
	}
	return nil
}

func TestDispatcher_ProcessesAll(t *testing.T) {
	svc := &collectService{done: make(chan struct{}), expect: 3}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, subject := range []string{"h1", "h2", "b1"} {
		d.Record(ports.ActivityInput{Collection: "houses", Subject: subject, Action: "created"})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for activities, got %d", len(svc.processed))
	}
}

func TestDispatcher_SameSubjectKeepsOrder(t *testing.T) {
	svc := &collectService{done: make(chan struct{}), expect: 3}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, action := range []string{"created", "updated", "deleted"} {
		d.Record(ports.ActivityInput{Collection: "houses", Subject: "h1", Action: action})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for activities")
	}

	want := []string{"created", "updated", "deleted"}
	for i, in := range svc.processed {
		if in.Action != want[i] {
			t.Fatalf("order broken at %d: %v", i, svc.processed)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &collectService{done: make(chan struct{}), expect: 0}, zerolog.Nop())

	first := d.shardIndex("h1")
	for i := 0; i < 10; i++ {
		if d.shardIndex("h1") != first {
			t.Fatalf("shard index not stable")
		}
	}
}
