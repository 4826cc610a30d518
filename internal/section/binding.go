package section

// ValueChangedEvent carries the previous and new current section.
type ValueChangedEvent struct {
	Old *Section
	New *Section
}

// ReadOnlyBinding is the view of the selection binding handed to sections:
// they may read and observe it but never write it.
type ReadOnlyBinding interface {
	Value() *Section
	BindValueChanged(fn func(ValueChangedEvent), runOnceImmediately bool) func()
}

// Binding holds the single "current section" slot shared by every sibling
// section. Only the owning panel calls Set.
type Binding struct {
	value  *Section
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(ValueChangedEvent)
}

// NewBinding returns a binding with no current section.
func NewBinding() *Binding {
	return &Binding{}
}

// Value returns the current section, or nil when none is selected.
func (b *Binding) Value() *Section {
	return b.value
}

// Set replaces the current section and notifies subscribers in the order
// they subscribed. It reports false, without notifying anyone, when s is
// already current.
func (b *Binding) Set(s *Section) bool {
	if b.value == s {
		return false
	}
	evt := ValueChangedEvent{Old: b.value, New: s}
	b.value = s
	// copy so callbacks may unbind while we iterate
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	for _, sub := range subs {
		sub.fn(evt)
	}
	return true
}

// BindValueChanged registers fn for every subsequent change. With
// runOnceImmediately the callback also fires straight away with the present
// value as both Old and New. The returned func removes the subscription.
func (b *Binding) BindValueChanged(fn func(ValueChangedEvent), runOnceImmediately bool) func() {
	if fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	if runOnceImmediately {
		fn(ValueChangedEvent{Old: b.value, New: b.value})
	}
	return func() { b.unbind(id) }
}

// Subscribers returns the number of live subscriptions.
func (b *Binding) Subscribers() int {
	return len(b.subs)
}

func (b *Binding) unbind(id int) {
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
