// Package actionplan selects the remediation text a report shows for each
// category: a partner's own plans when it has any, otherwise the global
// plans whose score band contains the category average.
package actionplan

import (
	"github.com/blackwell-systems/psyscore/internal/assessment"
	"github.com/blackwell-systems/psyscore/internal/scoring"
)

// Source tells where a resolved set came from.
type Source string

const (
	SourcePartner Source = "partner"
	SourceGlobal  Source = "global"
)

// Resolved is the set of plans to render for one category.
type Resolved struct {
	// CategoryID is nil for the uncategorized bucket.
	CategoryID   *string      `json:"categoryId"`
	CategoryName string       `json:"categoryName"`
	AverageScore float64      `json:"averageScore"`
	Risk         scoring.Risk `json:"riskLabel"`
	Source       Source       `json:"source"`
	PlanIDs      []string     `json:"planIds"`
	Plans        []string     `json:"plans"`
}

// Resolver resolves plans for one partner against a fixed catalog.
type Resolver struct {
	partner map[scoring.CategoryKey][]assessment.ActionPlan
	global  map[scoring.CategoryKey][]assessment.ActionPlan
}

// NewResolver indexes the visible plans of the catalog. Plans hidden from
// reports and plans owned by other partners are dropped here.
func NewResolver(catalog []assessment.ActionPlan, partnerID string) *Resolver {
	r := &Resolver{
		partner: make(map[scoring.CategoryKey][]assessment.ActionPlan),
		global:  make(map[scoring.CategoryKey][]assessment.ActionPlan),
	}
	for _, p := range catalog {
		if !p.ShowInReport {
			continue
		}
		key := scoring.CategoryOf(p.CategoryID)
		switch {
		case p.IsGlobal:
			r.global[key] = append(r.global[key], p)
		case p.PartnerID != nil && *p.PartnerID == partnerID:
			r.partner[key] = append(r.partner[key], p)
		}
	}
	return r
}

// ResolveCategory returns the plans that apply to c, in catalog order.
// Partner plans always win once any exist for the category and are not
// filtered by score. Global plans must have a band containing the
// category average; a category without responses matches no band.
func (r *Resolver) ResolveCategory(c scoring.ProcessedCategory) ([]assessment.ActionPlan, Source) {
	if plans := r.partner[c.Key]; len(plans) > 0 {
		return plans, SourcePartner
	}

	avg := c.Average()
	if avg == nil {
		return nil, SourceGlobal
	}
	var matched []assessment.ActionPlan
	for _, p := range r.global[c.Key] {
		if lo, hi := p.Band(); *avg >= lo && *avg <= hi {
			matched = append(matched, p)
		}
	}
	return matched, SourceGlobal
}

// Resolve resolves every category in order and keeps only those with at
// least one plan to show.
func (r *Resolver) Resolve(categories []scoring.ProcessedCategory) []Resolved {
	out := []Resolved{}
	for _, c := range categories {
		plans, source := r.ResolveCategory(c)
		if len(plans) == 0 {
			continue
		}
		res := Resolved{
			CategoryID:   c.Key.Ref(),
			CategoryName: c.Name,
			AverageScore: c.AverageScore,
			Risk:         c.Risk,
			Source:       source,
			PlanIDs:      make([]string, len(plans)),
			Plans:        make([]string, len(plans)),
		}
		for i, p := range plans {
			res.PlanIDs[i] = p.ID
			res.Plans[i] = p.Description
		}
		out = append(out, res)
	}
	return out
}

// Resolve is a convenience wrapper for a single pass.
func Resolve(catalog []assessment.ActionPlan, partnerID string, categories []scoring.ProcessedCategory) []Resolved {
	return NewResolver(catalog, partnerID).Resolve(categories)
}
