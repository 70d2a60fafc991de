package fitness

import "maps"

// GoogleFit is the Google Fit data type space. It has no workout session
// type, so Workout is unsupported there.
var GoogleFit Platform = googleFit{}

var (
	gfStepCountDelta  = NewObjectType("com.google.step_count.delta", ClassQuantity, true)
	gfDistanceDelta   = NewObjectType("com.google.distance.delta", ClassQuantity, true)
	gfCaloriesExpend  = NewObjectType("com.google.calories.expended", ClassQuantity, true)
	gfWeight          = NewObjectType("com.google.weight", ClassQuantity, true)
	gfHeartRateBPM    = NewObjectType("com.google.heart_rate.bpm", ClassQuantity, true)
	gfActivitySegment = NewObjectType("com.google.activity.segment", ClassCategory, true)
)

var gfQuantityTypes = map[PermissionKind]*ObjectType{
	Step:      gfStepCountDelta,
	Distance:  gfDistanceDelta,
	Calories:  gfCaloriesExpend,
	Weight:    gfWeight,
	HeartRate: gfHeartRateBPM,
}

var gfActivities = map[string]string{
	"Biking":           "biking",
	"BikingStationary": "biking.stationary",
	"JumpRope":         "jump_rope",
	"Other":            "other",
	"Running":          "running",
	"RunningTreadmill": "running.treadmill",
	"Walking":          "walking",
	"WalkingTreadmill": "walking.treadmill",
	"Weightlifting":    "weightlifting",
}

type googleFit struct{}

func (googleFit) Name() string { return "googlefit" }

func (googleFit) QuantityType(kind PermissionKind) (*ObjectType, bool) {
	t, ok := gfQuantityTypes[kind]
	return t, ok
}

func (googleFit) ActivityType() (*ObjectType, bool) { return gfActivitySegment, true }

func (googleFit) WorkoutType() (*ObjectType, bool) { return nil, false }

func (googleFit) Activities() map[string]string { return maps.Clone(gfActivities) }

// PlatformByName returns HealthKit or GoogleFit by their Name.
func PlatformByName(name string) (Platform, bool) {
	switch name {
	case HealthKit.Name():
		return HealthKit, true
	case GoogleFit.Name():
		return GoogleFit, true
	default:
		return nil, false
	}
}
