package navigation

import "fmt"

// Validate reports every structural inconsistency in res. An empty slice
// means the result is a well-formed route for res.Request:
//
//   - Success is set and at least one segment is present.
//   - Every segment has a non-empty path.
//   - Every segment but the last carries a transition whose map is the next
//     segment's map and whose node is the first node of the next path.
//   - The last segment carries no transition.
//   - The route starts at the request's start and ends at its end.
func Validate(res Result) []string {
	var reasons []string
	if !res.Success {
		reasons = append(reasons, "result is not successful")
	}
	if len(res.Segments) == 0 {
		return append(reasons, "result has no segments")
	}

	last := len(res.Segments) - 1
	for i, seg := range res.Segments {
		if len(seg.Path) == 0 {
			reasons = append(reasons, fmt.Sprintf("segment %d (map %q) has an empty path", i, seg.MapID))
		}
		if i == last {
			if seg.Transition != nil {
				reasons = append(reasons, fmt.Sprintf("final segment (map %q) has a transition", seg.MapID))
			}
			continue
		}
		next := res.Segments[i+1]
		if seg.Transition == nil {
			reasons = append(reasons, fmt.Sprintf("segment %d (map %q) has no transition", i, seg.MapID))
			continue
		}
		if seg.Transition.MapID != next.MapID {
			reasons = append(reasons, fmt.Sprintf("segment %d transitions to map %q but segment %d is on map %q",
				i, seg.Transition.MapID, i+1, next.MapID))
		}
		if len(next.Path) > 0 && seg.Transition.NodeID != next.Path[0] {
			reasons = append(reasons, fmt.Sprintf("segment %d transitions to node %q but segment %d starts at %q",
				i, seg.Transition.NodeID, i+1, next.Path[0]))
		}
	}

	req := res.Request
	first, final := res.Segments[0], res.Segments[last]
	if first.MapID != req.StartMapID {
		reasons = append(reasons, fmt.Sprintf("route starts on map %q, want %q", first.MapID, req.StartMapID))
	}
	if len(first.Path) > 0 && first.Path[0] != req.StartNodeID {
		reasons = append(reasons, fmt.Sprintf("route starts at node %q, want %q", first.Path[0], req.StartNodeID))
	}
	if final.MapID != req.EndMapID {
		reasons = append(reasons, fmt.Sprintf("route ends on map %q, want %q", final.MapID, req.EndMapID))
	}
	if n := len(final.Path); n > 0 && final.Path[n-1] != req.EndNodeID {
		reasons = append(reasons, fmt.Sprintf("route ends at node %q, want %q", final.Path[n-1], req.EndNodeID))
	}
	return reasons
}

// IsValid reports whether Validate finds nothing wrong with res.
func IsValid(res Result) bool {
	return len(Validate(res)) == 0
}
