package fitness

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Request is one permission entry sent by the bridge, e.g.
// {"kind": 0, "access": 1}. Access defaults to Read when omitted.
type Request struct {
	Kind   PermissionKind `json:"kind"`
	Access AccessMode     `json:"access"`
}

// UnmarshalJSON decodes a request, defaulting access to Read. Unknown kind
// ordinals are kept; resolving them reports ErrUnsupportedKind.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind   *PermissionKind `json:"kind"`
		Access *AccessMode     `json:"access"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == nil {
		return errors.New("missing kind")
	}

	access := Read
	if raw.Access != nil {
		access = *raw.Access
	}
	if !access.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedAccess, int(access))
	}

	r.Kind = *raw.Kind
	r.Access = access
	return nil
}

// ParseRequests decodes a JSON array of permission requests. A bad entry
// fails the whole list with a *RequestError naming its index. A JSON null is
// not a list and is rejected; send [] for no requests.
func ParseRequests(data []byte) ([]Request, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse permission requests: %w", err)
	}
	if entries == nil {
		return nil, errors.New("failed to parse permission requests: expected a JSON array")
	}

	reqs := make([]Request, 0, len(entries))
	for i, entry := range entries {
		var req Request
		if err := json.Unmarshal(entry, &req); err != nil {
			return nil, &RequestError{Index: i, Err: err}
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// TypeSets are the descriptors to pass to a platform authorization call,
// split by access direction. Each list is deduplicated and keeps first-seen
// order.
type TypeSets struct {
	Read  []*ObjectType
	Write []*ObjectType
}

// BuildTypeSets resolves every request with r. Any resolution failure is
// returned wrapped in a *RequestError; a write request for a read-only type
// fails with ErrReadOnlyType.
func BuildTypeSets(r Resolver, reqs []Request) (*TypeSets, error) {
	sets := &TypeSets{}

	for i, req := range reqs {
		if !req.Access.Valid() {
			return nil, &RequestError{Index: i, Err: fmt.Errorf("%w: %d", ErrUnsupportedAccess, int(req.Access))}
		}

		t, err := r.Resolve(req.Kind)
		if err != nil {
			return nil, &RequestError{Index: i, Err: err}
		}
		if t == nil {
			return nil, &RequestError{Index: i, Err: &UnsupportedKindError{Kind: req.Kind}}
		}

		switch req.Access {
		case Read:
			sets.Read = appendUnique(sets.Read, t)
		case Write:
			if !t.Writable() {
				return nil, &RequestError{Index: i, Err: fmt.Errorf("%w: %s", ErrReadOnlyType, t.Identifier())}
			}
			sets.Write = appendUnique(sets.Write, t)
		}
	}

	return sets, nil
}

func appendUnique(list []*ObjectType, t *ObjectType) []*ObjectType {
	if slices.Contains(list, t) {
		return list
	}
	return append(list, t)
}

// Identifiers returns the platform identifiers of types, in order.
func Identifiers(types []*ObjectType) []string {
	ids := make([]string, len(types))
	for i, t := range types {
		ids[i] = t.Identifier()
	}
	return ids
}
