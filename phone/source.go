package phone

// Event is one host notification: either an edit or a key press.
type Event struct {
	Edit *Edit     `json:"edit,omitempty"`
	Key  *KeyPress `json:"key,omitempty"`
}

// Source delivers host events to handler until the returned stop func is
// called. Implementations must not call handler after stop returns.
type Source interface {
	Subscribe(handler func(Event)) (stop func())
}

// Feed is an in-process Source that dispatches synchronously, in
// subscription order, on the caller's goroutine.
type Feed struct {
	next     uint64
	order    []uint64
	handlers map[uint64]func(Event)
}

func NewFeed() *Feed {
	return &Feed{handlers: make(map[uint64]func(Event))}
}

func (f *Feed) Subscribe(handler func(Event)) func() {
	if handler == nil {
		return func() {}
	}
	id := f.next
	f.next++
	f.handlers[id] = handler
	f.order = append(f.order, id)

	return func() {
		if _, ok := f.handlers[id]; !ok {
			return
		}
		delete(f.handlers, id)
		for i, v := range f.order {
			if v == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
}

// Emit hands ev to every current subscriber.
func (f *Feed) Emit(ev Event) {
	for _, id := range append([]uint64(nil), f.order...) {
		if h, ok := f.handlers[id]; ok {
			h(ev)
		}
	}
}

// EmitEdit is Emit for an edit event.
func (f *Feed) EmitEdit(text string, intent Intent) {
	f.Emit(Event{Edit: &Edit{Text: text, Intent: intent}})
}

// EmitKey is Emit for a key press.
func (f *Feed) EmitKey(k KeyPress) {
	f.Emit(Event{Key: &k})
}

// Subscribers reports how many handlers are registered.
func (f *Feed) Subscribers() int {
	return len(f.handlers)
}
