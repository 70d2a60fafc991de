package fitness

// Resolver maps a permission kind to its platform descriptor.
type Resolver interface {
	Resolve(kind PermissionKind) (*ObjectType, error)
}

// ResolverFunc adapts a plain function to a Resolver, which is handy for
// substituting a fake platform in tests.
type ResolverFunc func(kind PermissionKind) (*ObjectType, error)

// Resolve calls f(kind).
func (f ResolverFunc) Resolve(kind PermissionKind) (*ObjectType, error) {
	return f(kind)
}

// Catalog resolves permission kinds against one platform and one kind set
// version. It holds no mutable state; a Catalog is safe for concurrent use
// and Resolve never blocks. The zero Catalog has no platform and resolves
// nothing; use NewCatalog.
type Catalog struct {
	platform Platform
	version  Version
}

// NewCatalog creates a catalog with the given options.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		platform: HealthKit,
		version:  CurrentVersion,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Platform returns the platform the catalog resolves against.
func (c *Catalog) Platform() Platform { return c.platform }

// Version returns the kind set version of the catalog.
func (c *Catalog) Version() Version { return c.version }

// Kinds returns the kinds the catalog's version defines.
func (c *Catalog) Kinds() []PermissionKind { return c.version.Kinds() }

// Resolve returns the platform's canonical descriptor for kind. Activity and
// Workout are not scalar quantities and resolve to the platform's activity
// and workout types. A kind the catalog cannot resolve yields an
// *UnsupportedKindError; the descriptor is never nil when err is nil.
func (c *Catalog) Resolve(kind PermissionKind) (*ObjectType, error) {
	if c.platform == nil || !kind.Valid() || !c.version.Includes(kind) {
		return nil, c.unsupported(kind)
	}

	var (
		t  *ObjectType
		ok bool
	)
	switch kind {
	case Activity:
		t, ok = c.platform.ActivityType()
	case Workout:
		t, ok = c.platform.WorkoutType()
	default:
		t, ok = c.platform.QuantityType(kind)
	}

	if !ok || t == nil {
		return nil, c.unsupported(kind)
	}
	return t, nil
}

func (c *Catalog) unsupported(kind PermissionKind) error {
	return &UnsupportedKindError{
		Kind:     kind,
		Platform: c.platformName(),
		Version:  c.version,
	}
}

func (c *Catalog) platformName() string {
	if c.platform == nil {
		return ""
	}
	return c.platform.Name()
}

var defaultCatalog = NewCatalog()

// ResolveQuantityType resolves kind against HealthKit with the current kind
// set. It is synchronous and does no I/O.
func ResolveQuantityType(kind PermissionKind) (*ObjectType, error) {
	return defaultCatalog.Resolve(kind)
}
