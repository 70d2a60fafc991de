package fitness

// Constants is the catalog as published to the other side of the bridge.
// Kind and access values are the ordinals callers send back in requests.
type Constants struct {
	Platform         string                    `json:"Platform"`
	PermissionKind   map[string]PermissionKind `json:"PermissionKind"`
	PermissionAccess map[string]AccessMode     `json:"PermissionAccess"`
	Activities       map[string]string         `json:"Activities"`
}

// Constants builds the export for c. Only kinds of the catalog's version
// that the platform can resolve are listed.
func (c *Catalog) Constants() *Constants {
	kinds := make(map[string]PermissionKind)
	for _, k := range c.Kinds() {
		if _, err := c.Resolve(k); err != nil {
			continue
		}
		kinds[k.String()] = k
	}

	var activities map[string]string
	if c.platform != nil {
		activities = c.platform.Activities()
	}

	return &Constants{
		Platform:       c.platformName(),
		PermissionKind: kinds,
		PermissionAccess: map[string]AccessMode{
			Read.String():  Read,
			Write.String(): Write,
		},
		Activities: activities,
	}
}
