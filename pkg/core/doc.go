// Package core provides the change-tracked value container used by the
// Magento REST client.
//
// A Property[T] holds the live value of a resource field together with the
// baseline it was last synchronized at. The client reads and writes the live
// value freely and asks HasChanged to decide whether the field belongs in an
// outgoing update request. After the server accepts the update, the client
// calls SetValueAsInitial to re-baseline the field.
//
// # Core Types
//
//	sku := core.NewProperty[string]()
//	sku.Set("24-MB01")
//	sku.HasChanged()        // true
//	sku.SetValueAsInitial() // commit
//	sku.HasChanged()        // false
//
// Containers are compared by content, not identity:
//
//	tags := core.NewPropertyOf([]string{"sale"})
//	tags.Set([]string{"sale"}) // new slice, same contents
//	tags.HasChanged()          // false
//	tags.Value()[0] = "new"    // in-place edit
//	tags.HasChanged()          // true
//	tags.InitialValue()        // []string{"sale"}
//
// # Absence
//
// A nil slice, map, pointer or interface is absent. Absence is distinct from
// an empty container: assigning an empty map over a nil baseline is a change.
// Assigning an absent value over a present baseline is not, because an absent
// field has nothing to send. Use TrackAbsent to report it as a change.
//
// # Thread Safety
//
// Property has no internal synchronization. The owning resource is expected
// to serialize access when it is shared across goroutines.
package core
