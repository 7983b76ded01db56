package navigation

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mapnav/core"
)

// Snapshot is a fixed MapSource over a slice of maps. Nil entries are
// ignored; on duplicate ids the first occurrence wins for GetMap.
type Snapshot []*core.Map

// GetMap returns the first map in s with the given id.
func (s Snapshot) GetMap(ctx context.Context, id string) (*core.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, m := range s {
		if m != nil && m.ID() == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", core.ErrMapNotFound, id)
}

// AllMaps returns the non-nil maps of s in order.
func (s Snapshot) AllMaps(ctx context.Context) ([]*core.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*core.Map, 0, len(s))
	for _, m := range s {
		if m != nil {
			out = append(out, m)
		}
	}
	return out, nil
}
