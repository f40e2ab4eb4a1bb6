package events

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var rebuilt, reloaded int
	bus.Subscribe(TopicSnapshotRebuilt, func(Event) { rebuilt++ })
	bus.Subscribe(TopicSnapshotRebuilt, func(Event) { rebuilt++ })
	bus.Subscribe(TopicPolicyReloaded, func(Event) { reloaded++ })

	bus.Publish(Event{Type: TopicSnapshotRebuilt, BuildID: 1})
	if rebuilt != 2 || reloaded != 0 {
		t.Errorf("rebuilt=%d reloaded=%d after one rebuild event", rebuilt, reloaded)
	}

	bus.Publish(Event{Type: TopicPolicyReloaded})
	if reloaded != 1 {
		t.Errorf("reloaded=%d, want 1", reloaded)
	}

	// Unknown topics are a no-op.
	bus.Publish(Event{Type: "unknown"})
}

func TestBusStampsCreatedAt(t *testing.T) {
	bus := NewBus()
	var got Event
	bus.Subscribe(TopicSnapshotRebuilt, func(e Event) { got = e })
	bus.Publish(Event{Type: TopicSnapshotRebuilt})
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped when absent")
	}
}
