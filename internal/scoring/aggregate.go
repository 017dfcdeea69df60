package scoring

import (
	"sort"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

// UncategorizedName is the display name of the uncategorized bucket.
const UncategorizedName = "Uncategorized"

// AggregateQuestion computes the average and sentiment distribution of one
// question from its scored values. Without values the average is 0 and the
// distribution is all zero.
func AggregateQuestion(q assessment.Question, values []float64) ProcessedQuestion {
	pq := ProcessedQuestion{
		QuestionID:    q.ID,
		Order:         assessment.OrderOf(q.Order),
		ResponseCount: len(values),
		Distribution:  distributionOf(values),
		Risk:          RiskNoData,
		values:        append([]float64(nil), values...),
	}
	if len(values) > 0 {
		pq.AverageScore = mean(values)
		pq.Risk = BandScore(pq.AverageScore)
	}
	return pq
}

// AggregateCategory combines a category's processed questions. The average
// is taken over every individual response of every question, so questions
// with more responses weigh more. c is nil for the uncategorized bucket.
func AggregateCategory(key CategoryKey, c *assessment.Category, questions []ProcessedQuestion) ProcessedCategory {
	qs := make([]ProcessedQuestion, len(questions))
	copy(qs, questions)
	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Order < qs[j].Order
	})

	var all []float64
	for _, q := range qs {
		all = append(all, q.values...)
	}

	pc := ProcessedCategory{
		Key:           key,
		CategoryID:    key.Ref(),
		Name:          UncategorizedName,
		ResponseCount: len(all),
		Distribution:  distributionOf(all),
		Risk:          RiskNoData,
		Questions:     qs,
	}
	if c != nil {
		pc.Name = c.Name
		pc.Description = c.Description
		pc.Order = assessment.OrderOf(c.Order)
	}
	if len(all) > 0 {
		pc.AverageScore = mean(all)
		pc.Risk = BandScore(pc.AverageScore)
	}
	return pc
}

// Aggregation is the category view of a report run.
type Aggregation struct {
	// Categories holds every active category ordered by display order.
	Categories []ProcessedCategory

	// Uncategorized is nil when every active question has a category.
	Uncategorized *ProcessedCategory

	// DetachedQuestions counts active questions whose category is unknown or
	// inactive. They are left out of every bucket.
	DetachedQuestions int

	// DetachedResponses counts the scored values dropped with them.
	DetachedResponses int
}

// Aggregate groups the active questions under the active categories and
// computes every question and category aggregate. scores maps question IDs
// to the scored values of their responses.
func Aggregate(categories []assessment.Category, questions []assessment.Question, scores map[string][]float64) Aggregation {
	var active []assessment.Category
	byID := make(map[string]*assessment.Category)
	for _, c := range categories {
		if c.Status.Active() {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return assessment.OrderOf(active[i].Order) < assessment.OrderOf(active[j].Order)
	})
	for i := range active {
		byID[active[i].ID] = &active[i]
	}

	var agg Aggregation
	buckets := make(map[CategoryKey][]ProcessedQuestion)
	for _, q := range questions {
		if !q.Status.Active() {
			continue
		}
		key := CategoryOf(q.CategoryID)
		if id, ok := key.ID(); ok && byID[id] == nil {
			agg.DetachedQuestions++
			agg.DetachedResponses += len(scores[q.ID])
			continue
		}
		buckets[key] = append(buckets[key], AggregateQuestion(q, scores[q.ID]))
	}

	agg.Categories = make([]ProcessedCategory, 0, len(active))
	for i := range active {
		key := Categorized(active[i].ID)
		agg.Categories = append(agg.Categories, AggregateCategory(key, &active[i], buckets[key]))
	}
	if qs := buckets[Uncategorized]; len(qs) > 0 {
		pc := AggregateCategory(Uncategorized, nil, qs)
		agg.Uncategorized = &pc
	}
	return agg
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
