package fitness

import (
	"fmt"
	"strings"
)

// PermissionKind identifies a category of health data the bridge can request
// access to. Values are integer-coded and cross process boundaries as plain
// integers, so existing ordinals never change: new kinds are appended.
type PermissionKind int

const (
	// Step is the step count.
	Step PermissionKind = iota
	// Distance is walking and running distance.
	Distance
	// Calories is active energy burned.
	Calories
	// Weight is body mass.
	Weight
	// Activity is the daily activity summary (or activity segments on Google Fit).
	Activity
	// Workout is a recorded workout session.
	Workout
	// HeartRate is heart rate in beats per minute. Added in VersionHeartRate.
	HeartRate
)

var kindNames = [...]string{
	Step:      "Step",
	Distance:  "Distance",
	Calories:  "Calories",
	Weight:    "Weight",
	Activity:  "Activity",
	Workout:   "Workout",
	HeartRate: "HeartRate",
}

// Kinds returns every kind of the current catalog version in ordinal order.
func Kinds() []PermissionKind {
	return CurrentVersion.Kinds()
}

// Valid reports whether k is a defined kind.
func (k PermissionKind) Valid() bool {
	return k >= Step && k <= HeartRate
}

// String returns the bridge name of the kind, e.g. "HeartRate".
func (k PermissionKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PermissionKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParsePermissionKind accepts the bridge name ("HeartRate") or the
// upper snake case form ("HEART_RATE"), ignoring case.
func ParsePermissionKind(name string) (PermissionKind, error) {
	folded := strings.ReplaceAll(name, "_", "")
	for i, n := range kindNames {
		if strings.EqualFold(folded, n) {
			return PermissionKind(i), nil
		}
	}
	return -1, &UnsupportedKindError{Kind: -1, Name: name}
}

// Version identifies a release of the closed kind set. Each version is a
// strict superset of the one before it.
type Version int

const (
	// VersionBase holds Step through Workout.
	VersionBase Version = iota + 1
	// VersionHeartRate adds HeartRate.
	VersionHeartRate
)

// CurrentVersion is the newest kind set compiled into this package.
const CurrentVersion = VersionHeartRate

// last kind of each version; versions only ever append.
var versionLast = map[Version]PermissionKind{
	VersionBase:      Workout,
	VersionHeartRate: HeartRate,
}

// Valid reports whether v is a known version.
func (v Version) Valid() bool {
	_, ok := versionLast[v]
	return ok
}

// Includes reports whether k belongs to the kind set of v.
func (v Version) Includes(k PermissionKind) bool {
	last, ok := versionLast[v]
	if !ok {
		return false
	}
	return k >= Step && k <= last
}

// Kinds returns the kinds of v in ordinal order, or nil for an unknown version.
func (v Version) Kinds() []PermissionKind {
	last, ok := versionLast[v]
	if !ok {
		return nil
	}
	kinds := make([]PermissionKind, 0, int(last)+1)
	for k := Step; k <= last; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (v Version) String() string {
	switch v {
	case VersionBase:
		return "base"
	case VersionHeartRate:
		return "heart-rate"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}
