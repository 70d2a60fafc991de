package fitness

// Option is a functional option for configuring a Catalog.
type Option func(*Catalog)

// WithPlatform sets the platform whose descriptors the catalog resolves to.
// By default, the catalog resolves to HealthKit.
func WithPlatform(p Platform) Option {
	return func(c *Catalog) {
		if p != nil {
			c.platform = p
		}
	}
}

// WithVersion pins the catalog to an older kind set. Kinds added after v
// resolve to an UnsupportedKindError, as they would for a bridge built
// against that release. An unknown version is ignored. By default, the
// catalog uses CurrentVersion.
func WithVersion(v Version) Option {
	return func(c *Catalog) {
		if v.Valid() {
			c.version = v
		}
	}
}
