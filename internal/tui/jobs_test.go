package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type pingMsg struct{}

func newObservedBus(t *testing.T) (*jobBus, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	bus := newJobBus(zap.New(core))
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}
	return bus, logs
}

func TestJobBusSignalsThenDelivers(t *testing.T) {
	bus, logs := newObservedBus(t)

	cmd := bus.Start(jobKindAnalysis, func(context.Context) (tea.Msg, error) {
		return pingMsg{}, nil
	}, zap.String("widget", "w-1"))
	msgs := drain(t, cmd)
	if len(msgs) != 2 {
		t.Fatalf("expected signal and result, got %d messages", len(msgs))
	}

	signal, ok := msgs[0].(jobSignalMsg)
	if !ok {
		t.Fatalf("first message should be a signal, got %T", msgs[0])
	}
	if signal.Snapshot.Status != jobStatusRunning || signal.Snapshot.ID != "analysis-1" {
		t.Fatalf("unexpected start snapshot %+v", signal.Snapshot)
	}

	result, ok := msgs[1].(jobResultEnvelope)
	if !ok {
		t.Fatalf("second message should be a result, got %T", msgs[1])
	}
	if result.Snapshot.Status != jobStatusSucceeded {
		t.Fatalf("status = %s", result.Snapshot.Status)
	}
	if result.Snapshot.Duration != 250*time.Millisecond {
		t.Fatalf("duration = %s", result.Snapshot.Duration)
	}
	if _, ok := result.Payload.(pingMsg); !ok {
		t.Fatalf("payload = %T", result.Payload)
	}

	finished := logs.FilterMessage("job finished").All()
	if len(finished) != 1 {
		t.Fatalf("expected one finish log, got %d", len(finished))
	}
	fields := finished[0].ContextMap()
	if fields["status"] != "succeeded" || fields["kind"] != "analysis" || fields["widget"] != "w-1" {
		t.Fatalf("unexpected log fields %v", fields)
	}
	if logs.FilterMessage("job started").Len() != 1 {
		t.Fatal("start should be logged at debug")
	}
}

func TestJobBusRecordsFailure(t *testing.T) {
	bus, logs := newObservedBus(t)

	cmd := bus.Start(jobKindSelect, func(context.Context) (tea.Msg, error) {
		return nil, errors.New("not a regular file")
	})
	msgs := drain(t, cmd)
	result, ok := msgs[len(msgs)-1].(jobResultEnvelope)
	if !ok {
		t.Fatalf("expected result envelope, got %T", msgs[len(msgs)-1])
	}
	if result.Snapshot.Status != jobStatusFailed || result.Snapshot.Err != "not a regular file" {
		t.Fatalf("unexpected snapshot %+v", result.Snapshot)
	}
	if logs.FilterField(zap.String("status", "failed")).Len() != 1 {
		t.Fatal("failure should be logged")
	}
}

func TestJobIDsIncrementPerBus(t *testing.T) {
	bus, _ := newObservedBus(t)
	if got := bus.nextID(jobKindSelect); got != "select-1" {
		t.Fatalf("first id = %s", got)
	}
	if got := bus.nextID(jobKindAnalysis); got != "analysis-2" {
		t.Fatalf("second id = %s", got)
	}
}
