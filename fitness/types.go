package fitness

import "fmt"

// TypeClass tells what kind of platform descriptor an ObjectType is.
type TypeClass int

const (
	// ClassQuantity is a scalar numeric measurement (steps, distance, ...).
	ClassQuantity TypeClass = iota
	// ClassCategory is an enumerated or segmented sample type.
	ClassCategory
	// ClassWorkout is a workout session type.
	ClassWorkout
	// ClassActivitySummary is a daily activity summary type.
	ClassActivitySummary
)

func (c TypeClass) String() string {
	switch c {
	case ClassQuantity:
		return "quantity"
	case ClassCategory:
		return "category"
	case ClassWorkout:
		return "workout"
	case ClassActivitySummary:
		return "activity_summary"
	default:
		return fmt.Sprintf("TypeClass(%d)", int(c))
	}
}

// ObjectType is an opaque handle for a platform health data type. Platforms
// hand out one instance per type, so two handles for the same type are the
// same pointer. Callers pass handles through unmodified.
type ObjectType struct {
	identifier string
	class      TypeClass
	writable   bool
}

// NewObjectType creates a descriptor. It is meant for Platform
// implementations, which must create each type once and return that
// instance on every lookup.
func NewObjectType(identifier string, class TypeClass, writable bool) *ObjectType {
	return &ObjectType{identifier: identifier, class: class, writable: writable}
}

// Identifier returns the platform's identifier for the type,
// e.g. "HKQuantityTypeIdentifierStepCount".
func (t *ObjectType) Identifier() string { return t.identifier }

// Class returns the descriptor class.
func (t *ObjectType) Class() TypeClass { return t.class }

// IsQuantity reports whether t is a scalar quantity type.
func (t *ObjectType) IsQuantity() bool { return t.class == ClassQuantity }

// Writable reports whether the platform accepts saved samples of t.
func (t *ObjectType) Writable() bool { return t.writable }

func (t *ObjectType) String() string {
	return fmt.Sprintf("%s(%s)", t.class, t.identifier)
}

// Platform is the host health data platform as seen by the catalog. It owns
// the descriptors; lookups report false when the platform has no such type.
type Platform interface {
	// Name is a short lower-case platform name, e.g. "healthkit".
	Name() string

	// QuantityType returns the scalar quantity type for a scalar kind.
	QuantityType(kind PermissionKind) (*ObjectType, bool)

	// ActivityType returns the activity summary or activity category type.
	ActivityType() (*ObjectType, bool)

	// WorkoutType returns the workout session type.
	WorkoutType() (*ObjectType, bool)

	// Activities maps bridge activity names to platform activity identifiers.
	Activities() map[string]string
}
