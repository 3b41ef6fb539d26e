package bind

import (
	"github.com/ygrebnov/bind/observable"
)

// ---- Fixture object models ----
//
// viewModel and view follow the usual generated-boilerplate shape: observable,
// raising a change notification only when the value actually changes.

type viewModel struct {
	observable.Emitter
	title string
	count int
}

func (m *viewModel) Title() string { return m.title }

func (m *viewModel) SetTitle(v string) {
	if v == m.title {
		return
	}
	m.title = v
	m.Changed("Title")
}

func (m *viewModel) Count() int { return m.count }

func (m *viewModel) SetCount(v int) {
	if v == m.count {
		return
	}
	m.count = v
	m.Changed("Count")
}

type view struct {
	observable.Emitter
	text string
}

func (v *view) Text() string { return v.text }

func (v *view) SetText(s string) {
	if s == v.text {
		return
	}
	v.text = s
	v.Changed("Text")
}

// silent has accessors but no notification capability.
type silent struct {
	name string
}

func (s *silent) Name() string { return s.name }

func (s *silent) SetName(v string) { s.name = v }

// readOnly exposes only a getter.
type readOnly struct {
	observable.Emitter
	value string
}

func (r *readOnly) Value() string { return r.value }

// writeOnly exposes only a setter.
type writeOnly struct {
	observable.Emitter
	value string
}

func (w *writeOnly) SetValue(v string) { w.value = v }

// countingSource counts subscription traffic on its embedded Emitter.
type countingSource struct {
	observable.Emitter
	subscribes   int
	unsubscribes int
	value        string
}

func (c *countingSource) Subscribe(property string, callback func()) observable.Token {
	c.subscribes++
	return c.Emitter.Subscribe(property, callback)
}

func (c *countingSource) Unsubscribe(token observable.Token) {
	c.unsubscribes++
	c.Emitter.Unsubscribe(token)
}

func (c *countingSource) Value() string { return c.value }

func (c *countingSource) SetValue(v string) {
	if v == c.value {
		return
	}
	c.value = v
	c.Changed("Value")
}

// tags is a defined composite type: assignable to map[string]bool but failing
// an interface assertion against it.
type tags map[string]bool

type tagged struct {
	observable.Emitter
	tags tags
}

func (g *tagged) Tags() tags { return g.tags }

func (g *tagged) SetTags(v tags) {
	g.tags = v
	g.Changed("Tags")
}

// zeroBasedSource is an Observable whose first issued token is zero.
type zeroBasedSource struct {
	callbacks []func() // token = slice index
	removed   map[observable.Token]bool
	value     string
}

func (z *zeroBasedSource) Subscribe(property string, callback func()) observable.Token {
	z.callbacks = append(z.callbacks, callback)
	return observable.Token(len(z.callbacks) - 1)
}

func (z *zeroBasedSource) Unsubscribe(token observable.Token) {
	if z.removed == nil {
		z.removed = make(map[observable.Token]bool)
	}
	z.removed[token] = true
}

func (z *zeroBasedSource) Value() string { return z.value }

func (z *zeroBasedSource) SetValue(v string) {
	if v == z.value {
		return
	}
	z.value = v
	for i, callback := range z.callbacks {
		if !z.removed[observable.Token(i)] {
			callback()
		}
	}
}

// oddShape carries a bare field and a method that is not accessor-shaped.
type oddShape struct {
	observable.Emitter
	Label string
}

func (o *oddShape) Rename(v string) string {
	o.Label = v
	return v
}
