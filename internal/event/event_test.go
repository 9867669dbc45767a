package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveSpawned, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(WaveSpawned, ListenerFunc(func(Event) { order = append(order, "second") }))
	other := &countingListener{}
	d.Subscribe(ShellFired, other)

	d.Dispatch(Event{Type: WaveSpawned, Data: WaveSpawnedData{Number: 1}})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected delivery order %v", order)
	}
	if len(other.got) != 0 {
		t.Error("listener received an event it did not subscribe to")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(TargetDestroyed, a)
	d.Subscribe(TargetDestroyed, b)
	d.Unsubscribe(TargetDestroyed, a)

	d.Dispatch(Event{Type: TargetDestroyed})

	if len(a.got) != 0 {
		t.Error("unsubscribed listener still called")
	}
	if len(b.got) != 1 {
		t.Errorf("expected 1 event, got %d", len(b.got))
	}
}

func TestNilDispatcherDropsEvents(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: ShellSettled})
}

func TestUnsubscribeFuncListenerIsIgnored(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(ShellFired, f)
	d.Subscribe(ShellFired, &countingListener{})

	d.Unsubscribe(ShellFired, f)
	d.Unsubscribe(ShellFired, nil)
	d.Dispatch(Event{Type: ShellFired})

	if calls != 1 {
		t.Errorf("func listener should stay subscribed, got %d calls", calls)
	}
}
