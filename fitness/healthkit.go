package fitness

import "maps"

// HealthKit is the Apple HealthKit type space.
var HealthKit Platform = healthKit{}

var (
	hkStepCount       = NewObjectType("HKQuantityTypeIdentifierStepCount", ClassQuantity, true)
	hkDistance        = NewObjectType("HKQuantityTypeIdentifierDistanceWalkingRunning", ClassQuantity, true)
	hkActiveEnergy    = NewObjectType("HKQuantityTypeIdentifierActiveEnergyBurned", ClassQuantity, true)
	hkBodyMass        = NewObjectType("HKQuantityTypeIdentifierBodyMass", ClassQuantity, true)
	hkHeartRate       = NewObjectType("HKQuantityTypeIdentifierHeartRate", ClassQuantity, true)
	hkWorkout         = NewObjectType("HKWorkoutTypeIdentifier", ClassWorkout, true)
	hkActivitySummary = NewObjectType("HKActivitySummaryTypeIdentifier", ClassActivitySummary, false) // HealthKit never shares summaries
)

var hkQuantityTypes = map[PermissionKind]*ObjectType{
	Step:      hkStepCount,
	Distance:  hkDistance,
	Calories:  hkActiveEnergy,
	Weight:    hkBodyMass,
	HeartRate: hkHeartRate,
}

// HealthKit has no treadmill or stationary variants; indoor is workout metadata.
var hkActivities = map[string]string{
	"Biking":        "HKWorkoutActivityTypeCycling",
	"JumpRope":      "HKWorkoutActivityTypeJumpRope",
	"Other":         "HKWorkoutActivityTypeOther",
	"Running":       "HKWorkoutActivityTypeRunning",
	"Walking":       "HKWorkoutActivityTypeWalking",
	"Weightlifting": "HKWorkoutActivityTypeTraditionalStrengthTraining",
}

type healthKit struct{}

func (healthKit) Name() string { return "healthkit" }

func (healthKit) QuantityType(kind PermissionKind) (*ObjectType, bool) {
	t, ok := hkQuantityTypes[kind]
	return t, ok
}

func (healthKit) ActivityType() (*ObjectType, bool) { return hkActivitySummary, true }

func (healthKit) WorkoutType() (*ObjectType, bool) { return hkWorkout, true }

func (healthKit) Activities() map[string]string { return maps.Clone(hkActivities) }
