package careers

import (
	"context"
	"log"

	"github.com/genfuture/careers-api/model"
)

// Aggregator produces the merged career-path view for a course: the
// union of locally curated paths and externally sourced ones, with
// local data winning every name collision.
type Aggregator struct {
	onet    *ONetClient
	blsKey  string
	onetKey string
}

// NewAggregator creates an aggregator. Both keys must be present for
// live external fetches; otherwise the curated fallback table is used.
func NewAggregator(onetKey, blsKey string) *Aggregator {
	a := &Aggregator{
		onetKey: onetKey,
		blsKey:  blsKey,
	}
	if onetKey != "" {
		a.onet = NewONetClient(onetKey)
	}
	return a
}

// FetchExternal returns externally sourced careers for a course name.
// Without both credentials it serves the curated table directly (no
// network call). With credentials, any upstream failure or an empty
// search result degrades to the curated table. Never returns an error.
func (a *Aggregator) FetchExternal(ctx context.Context, courseName string) []ExternalCareer {
	if a.onetKey == "" || a.blsKey == "" {
		return FallbackCareers(courseName)
	}

	results, err := a.onet.SearchCareers(ctx, courseName)
	if err != nil {
		log.Printf("[careers] onet search failed for %q: %v", courseName, err)
		results = nil
	}

	if len(results) == 0 {
		return FallbackCareers(courseName)
	}
	return results
}

// Merge combines external and local careers keyed by name. External
// items are inserted first, then local ones, so a local entry replaces
// an external entry with the same name. Output preserves insertion
// order. External entries carry ID 0 and the course's ID.
func Merge(external []ExternalCareer, local []model.CareerPath, courseID uint) []model.CareerPath {
	byName := make(map[string]model.CareerPath, len(external)+len(local))
	order := make([]string, 0, len(external)+len(local))

	insert := func(cp model.CareerPath) {
		if _, exists := byName[cp.Name]; !exists {
			order = append(order, cp.Name)
		}
		byName[cp.Name] = cp
	}

	for _, ext := range external {
		insert(model.CareerPath{
			ID:          0,
			CourseID:    courseID,
			Name:        ext.Name,
			Description: ext.Description,
			AvgSalary:   ext.AvgSalary,
			GrowthRate:  ext.GrowthRate,
		})
	}
	for _, cp := range local {
		insert(cp)
	}

	merged := make([]model.CareerPath, 0, len(order))
	for _, name := range order {
		merged = append(merged, byName[name])
	}
	return merged
}
