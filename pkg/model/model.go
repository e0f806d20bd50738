// Package model groups the change-tracked fields of a REST resource.
//
// A Model maps wire field names to tracked values (usually *core.Property[T])
// and turns their individual change state into the change set of an update
// request:
//
//	sku := core.NewPropertyOf("24-MB01")
//	price := core.NewPropertyOf(34.0)
//
//	product := model.New("product")
//	product.MustRegister("sku", sku)
//	product.MustRegister("price", price)
//
//	price.Set(29.0)
//	payload := product.Changes() // map[price:29]
//	// ... send payload, then on success:
//	product.Commit(ctx)
//
// Encoding the change set and sending it are left to the caller.
package model

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrEmptyFieldName is returned when registering a field without a name.
	ErrEmptyFieldName = errors.New("model: field name required")

	// ErrNilField is returned when registering a nil field.
	ErrNilField = errors.New("model: field required")

	// ErrDuplicateField is returned when a field name is registered twice.
	ErrDuplicateField = errors.New("model: duplicate field")
)

// Span event names.
const (
	EventCommit = "model.commit"
	EventReset  = "model.reset"
)

// Field is a change-tracked value. Every *core.Property[T] is a Field.
type Field interface {
	HasChanged() bool
	SetValueAsInitial()
	Reset()
	Any() any
}

// Model is the set of tracked fields of one resource instance.
//
// Model is not safe for concurrent use, matching the fields it holds.
type Model struct {
	resource string
	config   Config

	fields map[string]Field
	order  []string // registration order
}

// New creates an empty model for the named resource type (e.g. "product").
func New(resource string, opts ...Option) *Model {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Logger == nil {
		config.Logger = defaultConfig().Logger
	}
	if config.Recorder == nil {
		config.Recorder = nopRecorder{}
	}

	return &Model{
		resource: resource,
		config:   config,
		fields:   make(map[string]Field),
	}
}

// Resource returns the resource type name.
func (m *Model) Resource() string {
	return m.resource
}

// Register adds a field under its wire name.
func (m *Model) Register(name string, f Field) error {
	if name == "" {
		return ErrEmptyFieldName
	}
	if isNilField(f) {
		return fmt.Errorf("%w: %q", ErrNilField, name)
	}
	if _, exists := m.fields[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}

	m.fields[name] = f
	m.order = append(m.order, name)
	return nil
}

// MustRegister is like Register but panics on error.
// It is intended for static field tables built at construction time.
func (m *Model) MustRegister(name string, f Field) {
	if err := m.Register(name, f); err != nil {
		panic(err)
	}
}

// Field returns the field registered under name.
func (m *Model) Field(name string) (Field, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// Fields returns all field names in registration order.
func (m *Model) Fields() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// HasChanges reports whether any field has changed.
func (m *Model) HasChanges() bool {
	for _, name := range m.order {
		if m.fields[name].HasChanged() {
			return true
		}
	}
	return false
}

// Changed returns the names of changed fields in registration order.
func (m *Model) Changed() []string {
	var changed []string
	for _, name := range m.order {
		if m.fields[name].HasChanged() {
			changed = append(changed, name)
		}
	}
	return changed
}

// Changes returns the current values of changed fields keyed by name.
// The map is never nil. Values share storage with the fields.
func (m *Model) Changes() map[string]any {
	changes := make(map[string]any)
	for _, name := range m.order {
		if f := m.fields[name]; f.HasChanged() {
			changes[name] = f.Any()
		}
	}
	m.config.Recorder.RecordPending(m.resource, len(changes))
	return changes
}

// Commit re-baselines every changed field and returns their names.
// Call it after the server accepted the change set.
func (m *Model) Commit(ctx context.Context) []string {
	changed := m.Changed()
	for _, name := range changed {
		m.fields[name].SetValueAsInitial()
	}

	m.config.Recorder.RecordCommit(m.resource, len(changed))
	m.config.Recorder.RecordPending(m.resource, 0)
	m.annotate(ctx, EventCommit, changed)
	m.config.Logger.DebugContext(ctx, "model committed",
		"resource", m.resource,
		"fields", changed,
	)
	return changed
}

// Reset discards local edits of every changed field and returns their names.
func (m *Model) Reset(ctx context.Context) []string {
	changed := m.Changed()
	for _, name := range changed {
		m.fields[name].Reset()
	}

	m.config.Recorder.RecordReset(m.resource, len(changed))
	m.config.Recorder.RecordPending(m.resource, 0)
	m.annotate(ctx, EventReset, changed)
	m.config.Logger.DebugContext(ctx, "model reset",
		"resource", m.resource,
		"fields", changed,
	)
	return changed
}

// isNilField reports whether f is nil, including a typed nil pointer such as
// (*core.Property[int])(nil).
func isNilField(f Field) bool {
	if f == nil {
		return true
	}
	rv := reflect.ValueOf(f)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// annotate adds an event to the span in ctx, if any is recording.
func (m *Model) annotate(ctx context.Context, event string, fields []string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(event, trace.WithAttributes(
		attribute.String("magento.resource", m.resource),
		attribute.StringSlice("magento.fields", fields),
	))
}
