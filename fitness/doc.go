// Package fitness provides the permission vocabulary of a health data bridge:
// the closed set of permission kinds (steps, distance, calories, weight,
// activity, workouts, heart rate), the read and write access modes, and the
// lookup from a kind to the host platform's native type descriptor.
//
// Lookups are pure and synchronous. They do no I/O and can be called from any
// goroutine, including latency sensitive ones.
//
// # Quick Start
//
//	t, err := fitness.ResolveQuantityType(fitness.Step)
//	// t.Identifier() == "HKQuantityTypeIdentifierStepCount"
//
// # Platforms
//
// A Catalog resolves against one Platform. HealthKit and GoogleFit are built
// in; any other implementation, including a fake, can be supplied with
// WithPlatform:
//
//	catalog := fitness.NewCatalog(fitness.WithPlatform(fitness.GoogleFit))
//	_, err := catalog.Resolve(fitness.Workout)
//	if errors.Is(err, fitness.ErrUnsupportedKind) {
//	    // Google Fit has no workout session type
//	}
//
// # Ordinals
//
// PermissionKind and AccessMode cross process boundaries as integers. New
// kinds are only ever appended, and Version names each released kind set.
//
// # Authorization sets
//
// Use ParseRequests and BuildTypeSets to turn a bridge request such as
// [{"kind":0},{"kind":3,"access":1}] into the read and write descriptor sets
// a platform authorization call expects.
package fitness
