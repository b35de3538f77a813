// ABOUTME: Three-way partition of local and cloud clothing collections
// ABOUTME: Matches records solely by clientId, never by the server primary key
package syncer

import "github.com/harperreed/closet/models"

// Pair holds the two copies of one item present on both sides.
type Pair struct {
	Local models.Clothing
	Cloud models.Clothing
}

// Partition splits the two collections into disjoint groups for one sync
// run. Every input item lands in exactly one bucket.
type Partition struct {
	LocalOnly   []models.Clothing
	CloudOnly   []models.Clothing
	BothSources []Pair
}

// ComputePartition categorizes local and cloud items by presence. Matching
// is clientId equality only; cloud items without a clientId can never match
// and always land in CloudOnly.
func ComputePartition(local, cloud []models.Clothing) Partition {
	lookup := make(map[string]models.Clothing, len(cloud))
	for _, c := range cloud {
		if c.ClientID != "" {
			lookup[c.ClientID] = c
		}
	}

	var p Partition
	for _, l := range local {
		if c, ok := lookup[l.ClientID]; ok {
			p.BothSources = append(p.BothSources, Pair{Local: l, Cloud: c})
			delete(lookup, l.ClientID)
		} else {
			p.LocalOnly = append(p.LocalOnly, l)
		}
	}

	// Whatever never matched is cloud-only. Iterate the input slice rather
	// than the map to keep the output order stable.
	for _, c := range cloud {
		if c.ClientID == "" {
			p.CloudOnly = append(p.CloudOnly, c)
			continue
		}
		if _, ok := lookup[c.ClientID]; ok {
			p.CloudOnly = append(p.CloudOnly, c)
			delete(lookup, c.ClientID)
		}
	}
	return p
}
