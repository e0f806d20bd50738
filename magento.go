// Package magento provides the public API for change-tracked resources of the
// Magento REST client.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-go/magento"
//
// Usage:
//
//	sku := magento.NewPropertyOf("24-MB01")
//	price := magento.NewPropertyOf(34.0)
//
//	product := magento.NewModel("product")
//	product.MustRegister("sku", sku)
//	product.MustRegister("price", price)
//
//	price.Set(29.0)
//	payload := product.Changes() // only the changed fields
package magento

import (
	"github.com/vango-go/magento/pkg/core"
	"github.com/vango-go/magento/pkg/metrics"
	"github.com/vango-go/magento/pkg/model"
)

// =============================================================================
// Properties
// =============================================================================

// NewProperty creates a change-tracked property holding the zero value of T.
// See core.Property for comparison and absence rules.
func NewProperty[T any](opts ...core.PropertyOption[T]) *core.Property[T] {
	return core.NewProperty(opts...)
}

// NewPropertyOf creates a property with value committed as its baseline.
func NewPropertyOf[T any](value T, opts ...core.PropertyOption[T]) *core.Property[T] {
	return core.NewPropertyOf(value, opts...)
}

// =============================================================================
// Models
// =============================================================================

// Model is the set of tracked fields of one resource instance.
type Model = model.Model

// Field is a change-tracked value that can be registered on a Model.
type Field = model.Field

// NewModel creates an empty model for the named resource type.
func NewModel(resource string, opts ...model.Option) *Model {
	return model.New(resource, opts...)
}

// =============================================================================
// Metrics
// =============================================================================

// NewCollector creates a Prometheus collector that can be passed to
// model.WithRecorder.
func NewCollector(opts ...metrics.Option) *metrics.Collector {
	return metrics.New(opts...)
}
