package eventbus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type uploadCompleted struct {
	Kind  string
	Count int
}

func TestEventBus_PublishMatchesByType(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	var got []uploadCompleted
	bus.Subscribe(func(e uploadCompleted) {
		got = append(got, e)
	})
	bus.Subscribe(func(e string) {
		t.Fatalf("string handler should not fire for uploadCompleted, got %q", e)
	})

	bus.Publish(uploadCompleted{Kind: "sessions", Count: 3})

	require.Len(t, got, 1)
	require.Equal(t, "sessions", got[0].Kind)
	require.Equal(t, 3, got[0].Count)
}

func TestEventBus_InvalidHandlerIgnored(t *testing.T) {
	bus := NewEventPublisher(logrus.New())
	bus.Subscribe(42)
	require.Equal(t, 0, bus.SubscribersCount())
}
