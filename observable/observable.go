// Package observable defines the change-notification capability a bindable
// object must expose, plus an embeddable Emitter implementing it.
package observable

// Token identifies a single subscription on an Observable.
type Token uint64

// Observable announces, by name, which of its properties has just changed.
// Any object bound on a readable side must implement it.
type Observable interface {
	// Subscribe registers callback to be invoked every time the named
	// property changes and returns a token for later removal.
	Subscribe(property string, callback func()) Token

	// Unsubscribe removes the subscription identified by token.
	// Unknown tokens are ignored.
	Unsubscribe(token Token)
}

// entry pairs a subscription token with its callback.
type entry struct {
	token    Token
	callback func()
}

// Emitter is a ready-made Observable intended to be embedded into object
// models and test fixtures. The zero value is usable.
//
// Emitter is not safe for concurrent use; callers mutating bound objects from
// multiple goroutines must synchronize externally.
type Emitter struct {
	lastToken Token
	subs      map[string][]entry // property name -> subscriptions in registration order
}

// Subscribe registers callback for the named property. A nil callback is not
// registered and yields the zero Token, which Unsubscribe ignores.
func (e *Emitter) Subscribe(property string, callback func()) Token {
	if callback == nil {
		return 0
	}
	if e.subs == nil {
		e.subs = make(map[string][]entry)
	}
	e.lastToken++
	e.subs[property] = append(e.subs[property], entry{token: e.lastToken, callback: callback})
	return e.lastToken
}

func (e *Emitter) Unsubscribe(token Token) {
	if token == 0 {
		return
	}
	for property, entries := range e.subs {
		for i, en := range entries {
			if en.token == token {
				e.subs[property] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Changed invokes, synchronously and in registration order, every callback
// subscribed to the named property. Callbacks run inline: a callback that
// writes back to an object whose setter re-raises Changed unconditionally
// will recurse.
func (e *Emitter) Changed(property string) {
	entries := e.subs[property]
	if len(entries) == 0 {
		return
	}
	// Snapshot so a callback may unsubscribe during dispatch.
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	for _, en := range snapshot {
		en.callback()
	}
}
