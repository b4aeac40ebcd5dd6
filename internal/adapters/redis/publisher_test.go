package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/events"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/redis"
	"github.com/jsamuelsen11/taskboard-sync/internal/board"
	"github.com/jsamuelsen11/taskboard-sync/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	rc := goredis.NewClient(&goredis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return m, rc
}

func subscribe(t *testing.T, rc *goredis.Client, channel string) <-chan *goredis.Message {
	t.Helper()

	sub := rc.Subscribe(context.Background(), channel)
	t.Cleanup(func() { _ = sub.Close() })
	if _, err := sub.Receive(context.Background()); err != nil {
		t.Fatalf("subscribe %s: %v", channel, err)
	}
	return sub.Channel()
}

func receive(t *testing.T, ch <-chan *goredis.Message) *goredis.Message {
	t.Helper()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestPublisher_BoardChanged(t *testing.T) {
	t.Parallel()

	_, rc := newRedis(t)
	p := redis.NewPublisher(rc, "tb:", nil)
	t.Cleanup(func() { _ = p.Close(context.Background()) })

	ch := subscribe(t, rc, "tb:board:ws-1")

	p.BoardChanged(board.Change{
		WorkspaceID: "ws-1",
		Version:     3,
		Op:          board.OpMove,
		TaskID:      "A",
		Board:       board.FromTasks([]task.Task{{ID: "A", Title: "Alpha", Status: task.StatusDone}}),
	})

	msg := receive(t, ch)
	var ev events.BoardEvent
	if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
		t.Fatalf("decode board event: %v", err)
	}
	if ev.Version != 3 || ev.Op != "move" || ev.TaskID != "A" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Board.Lanes[2].Count != 1 {
		t.Errorf("DONE count = %d, want 1", ev.Board.Lanes[2].Count)
	}

	snapshot, err := rc.Get(context.Background(), p.SnapshotKey("ws-1")).Result()
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if snapshot != msg.Payload {
		t.Errorf("snapshot = %s, want %s", snapshot, msg.Payload)
	}
}

func TestPublisher_Notify(t *testing.T) {
	t.Parallel()

	_, rc := newRedis(t)
	p := redis.NewPublisher(rc, "tb:", nil)
	t.Cleanup(func() { _ = p.Close(context.Background()) })

	ch := subscribe(t, rc, p.NotificationChannel("ws-1"))

	p.Notify(context.Background(), ports.Notification{
		WorkspaceID: "ws-1",
		TaskID:      "A",
		Level:       ports.LevelSuccess,
		Message:     "Task moved to Done",
		Time:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	msg := receive(t, ch)
	var ev events.NotificationEvent
	if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
		t.Fatalf("decode notification: %v", err)
	}
	if ev.Message != "Task moved to Done" || ev.Level != "success" {
		t.Errorf("event = %+v", ev)
	}
}

func TestPublisher_PreservesOrder(t *testing.T) {
	t.Parallel()

	_, rc := newRedis(t)
	p := redis.NewPublisher(rc, "tb:", nil)
	t.Cleanup(func() { _ = p.Close(context.Background()) })

	ch := subscribe(t, rc, "tb:board:ws-1")

	for v := uint64(1); v <= 5; v++ {
		p.BoardChanged(board.Change{WorkspaceID: "ws-1", Version: v, Op: board.OpUpsert, Board: board.New()})
	}

	for want := uint64(1); want <= 5; want++ {
		var ev events.BoardEvent
		if err := json.Unmarshal([]byte(receive(t, ch).Payload), &ev); err != nil {
			t.Fatalf("decode board event: %v", err)
		}
		if ev.Version != want {
			t.Fatalf("version = %d, want %d", ev.Version, want)
		}
	}
}

func TestPublisher_HealthCheck(t *testing.T) {
	t.Parallel()

	m, rc := newRedis(t)
	p := redis.NewPublisher(rc, "tb:", nil)
	t.Cleanup(func() { _ = p.Close(context.Background()) })

	if p.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", p.Name())
	}
	if err := p.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}

	m.Close()
	if err := p.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil after server stopped, want error")
	}
}

func TestPublisher_CloseTwice(t *testing.T) {
	t.Parallel()

	_, rc := newRedis(t)
	p := redis.NewPublisher(rc, "tb:", nil)

	if err := p.Close(context.Background()); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := p.Close(context.Background()); !errors.Is(err, redis.ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}

	// Events after close are dropped without panicking.
	p.Notify(context.Background(), ports.Notification{WorkspaceID: "ws-1"})
}
