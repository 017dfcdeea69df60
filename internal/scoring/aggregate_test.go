package scoring

import (
	"math"
	"slices"
	"testing"

	"github.com/blackwell-systems/psyscore/internal/assessment"
)

func strp(s string) *string    { return &s }
func intp(i int) *int          { return &i }
func f64p(f float64) *float64 { return &f }

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateQuestion_NoResponses(t *testing.T) {
	pq := AggregateQuestion(assessment.Question{ID: "q1"}, nil)

	if pq.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", pq.AverageScore)
	}
	if pq.Distribution != (Distribution{}) {
		t.Errorf("Distribution = %+v, want all zero", pq.Distribution)
	}
	if pq.ResponseCount != 0 {
		t.Errorf("ResponseCount = %d, want 0", pq.ResponseCount)
	}
	if pq.Risk != RiskNoData {
		t.Errorf("Risk = %q, want %q", pq.Risk, RiskNoData)
	}
	if pq.Average() != nil {
		t.Errorf("Average() = %v, want nil", *pq.Average())
	}
}

func TestAggregateQuestion_ClassifiesEachResponse(t *testing.T) {
	// The mean is 50 (neutral), but the distribution must come from the
	// individual responses, not from the mean.
	pq := AggregateQuestion(assessment.Question{ID: "q1", Order: intp(2)}, []float64{100, 0})

	if pq.AverageScore != 50 {
		t.Errorf("AverageScore = %v, want 50", pq.AverageScore)
	}
	if pq.Order != 2 {
		t.Errorf("Order = %d, want 2", pq.Order)
	}
	want := Distribution{Favorable: 50, Neutral: 0, Unfavorable: 50}
	if pq.Distribution != want {
		t.Errorf("Distribution = %+v, want %+v", pq.Distribution, want)
	}
	if pq.Risk != RiskModerate {
		t.Errorf("Risk = %q, want %q", pq.Risk, RiskModerate)
	}
}

func TestAggregateQuestion_DistributionSumsTo100(t *testing.T) {
	sets := [][]float64{
		{10},
		{40, 75, 39.99},
		{0, 25, 50, 75, 100, 100, 60},
		repeat(45, 7),
	}
	for _, values := range sets {
		pq := AggregateQuestion(assessment.Question{ID: "q"}, values)
		if got := pq.Distribution.Total(); !near(got, 100) {
			t.Errorf("Distribution.Total() for %v = %v, want 100", values, got)
		}
	}
}

func TestAggregateCategory_ResponseWeighted(t *testing.T) {
	q1 := AggregateQuestion(assessment.Question{ID: "q1"}, []float64{100})
	q2 := AggregateQuestion(assessment.Question{ID: "q2"}, repeat(0, 9))
	c := &assessment.Category{ID: "c1", Name: "Demandas", Status: assessment.StatusActive}

	pc := AggregateCategory(Categorized("c1"), c, []ProcessedQuestion{q1, q2})

	// 1×100 over 10 responses, not the mean of [100, 0].
	if !near(pc.AverageScore, 10) {
		t.Errorf("AverageScore = %v, want 10", pc.AverageScore)
	}
	if pc.ResponseCount != 10 {
		t.Errorf("ResponseCount = %d, want 10", pc.ResponseCount)
	}
	if pc.Risk != RiskHigh {
		t.Errorf("Risk = %q, want %q", pc.Risk, RiskHigh)
	}
	if got := pc.Distribution.Total(); !near(got, 100) {
		t.Errorf("Distribution.Total() = %v, want 100", got)
	}
}

func TestAggregateCategory_OrdersQuestions(t *testing.T) {
	qs := []ProcessedQuestion{
		AggregateQuestion(assessment.Question{ID: "late", Order: intp(3)}, nil),
		AggregateQuestion(assessment.Question{ID: "nil-order"}, nil),
		AggregateQuestion(assessment.Question{ID: "early", Order: intp(1)}, nil),
		AggregateQuestion(assessment.Question{ID: "zero", Order: intp(0)}, nil),
	}
	pc := AggregateCategory(Categorized("c"), &assessment.Category{ID: "c", Name: "C"}, qs)

	var ids []string
	for _, q := range pc.Questions {
		ids = append(ids, q.QuestionID)
	}
	// nil order counts as 0 and ties keep input order.
	want := []string{"nil-order", "zero", "early", "late"}
	if !slices.Equal(ids, want) {
		t.Errorf("question order = %v, want %v", ids, want)
	}
	if qs[0].QuestionID != "late" {
		t.Error("input slice must not be reordered")
	}
}

func TestAggregateCategory_Empty(t *testing.T) {
	pc := AggregateCategory(Categorized("c"), &assessment.Category{ID: "c", Name: "C"}, nil)

	if pc.AverageScore != 0 || pc.Risk != RiskNoData {
		t.Errorf("got average %v risk %q, want 0 and %q", pc.AverageScore, pc.Risk, RiskNoData)
	}
	if pc.Average() != nil {
		t.Error("Average() should be nil without responses")
	}
	if len(pc.Questions) != 0 {
		t.Errorf("Questions = %v, want none", pc.Questions)
	}
}

func TestAggregate_GroupsAndOrders(t *testing.T) {
	categories := []assessment.Category{
		{ID: "c2", Name: "Second", Order: intp(2), Status: assessment.StatusActive},
		{ID: "c1", Name: "First", Order: intp(1), Status: assessment.StatusActive},
		{ID: "c3", Name: "Retired", Status: assessment.StatusInactive},
	}
	questions := []assessment.Question{
		{ID: "q1", CategoryID: strp("c1"), Status: assessment.StatusActive},
		{ID: "q2", CategoryID: strp("c2"), Status: assessment.StatusActive},
		{ID: "q3", CategoryID: strp("c3"), Status: assessment.StatusActive},
		{ID: "q4", Status: assessment.StatusActive},
		{ID: "q5", CategoryID: strp("c1"), Status: assessment.StatusInactive},
	}
	scores := map[string][]float64{
		"q1": {80},
		"q2": {20, 40},
		"q3": {100, 90},
		"q4": {60},
		"q5": {0},
	}

	agg := Aggregate(categories, questions, scores)

	if len(agg.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(agg.Categories))
	}
	tests := []struct {
		name      string
		avg       float64
		questions int
	}{
		{"First", 80, 1},
		{"Second", 30, 1},
	}
	for i, tc := range tests {
		c := agg.Categories[i]
		if c.Name != tc.name || c.AverageScore != tc.avg || len(c.Questions) != tc.questions {
			t.Errorf("Categories[%d] = {%s %v %d questions}, want {%s %v %d questions}",
				i, c.Name, c.AverageScore, len(c.Questions), tc.name, tc.avg, tc.questions)
		}
	}

	if agg.DetachedQuestions != 1 {
		t.Errorf("DetachedQuestions = %d, want 1", agg.DetachedQuestions)
	}
	if agg.DetachedResponses != 2 {
		t.Errorf("DetachedResponses = %d, want 2", agg.DetachedResponses)
	}

	u := agg.Uncategorized
	if u == nil {
		t.Fatal("expected an uncategorized bucket")
	}
	if !u.Key.IsUncategorized() || u.CategoryID != nil {
		t.Errorf("bucket key = %v, categoryID = %v; want the uncategorized key and nil", u.Key, u.CategoryID)
	}
	if u.Name != UncategorizedName || u.AverageScore != 60 {
		t.Errorf("bucket = {%s %v}, want {%s 60}", u.Name, u.AverageScore, UncategorizedName)
	}
}

func TestAggregate_CategoryNamedLikeBucket(t *testing.T) {
	// A real category whose ID looks like a sentinel must not absorb
	// uncategorized questions.
	categories := []assessment.Category{{ID: "uncategorized", Name: "Real", Status: assessment.StatusActive}}
	questions := []assessment.Question{
		{ID: "q1", CategoryID: strp("uncategorized"), Status: assessment.StatusActive},
		{ID: "q2", Status: assessment.StatusActive},
	}

	agg := Aggregate(categories, questions, map[string][]float64{"q1": {100}, "q2": {0}})

	if len(agg.Categories) != 1 || agg.Categories[0].AverageScore != 100 {
		t.Fatalf("Categories = %+v, want one category averaging 100", agg.Categories)
	}
	if agg.Uncategorized == nil || agg.Uncategorized.AverageScore != 0 {
		t.Errorf("Uncategorized = %+v, want a bucket averaging 0", agg.Uncategorized)
	}
}

func TestAggregate_NoUncategorizedBucketWhenUnused(t *testing.T) {
	agg := Aggregate(
		[]assessment.Category{{ID: "c1", Name: "C", Status: assessment.StatusActive}},
		[]assessment.Question{{ID: "q1", CategoryID: strp("c1"), Status: assessment.StatusActive}},
		nil,
	)

	if agg.Uncategorized != nil {
		t.Errorf("Uncategorized = %+v, want nil", agg.Uncategorized)
	}
	if len(agg.Categories) != 1 || agg.Categories[0].Risk != RiskNoData {
		t.Errorf("Categories = %+v, want one no-data category", agg.Categories)
	}
}

func TestOverallAverage(t *testing.T) {
	tests := []struct {
		name        string
		assessments []assessment.Assessment
		want        *float64
		invalid     int
		plans       bool
	}{
		{"none", nil, nil, 0, false},
		{"all incomplete", []assessment.Assessment{{ID: "a"}, {ID: "b"}}, nil, 0, false},
		{
			"zero is a score",
			[]assessment.Assessment{{ID: "a", Score: f64p(0)}},
			f64p(0), 0, true,
		},
		{
			"skips nil and malformed",
			[]assessment.Assessment{
				{ID: "a", Score: f64p(60)},
				{ID: "b"},
				{ID: "c", Score: f64p(math.NaN())},
				{ID: "d", Score: f64p(101)},
				{ID: "e", Score: f64p(80)},
			},
			f64p(70), 2, true,
		},
		{"at gate", []assessment.Assessment{{ID: "a", Score: f64p(75)}}, f64p(75), 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := OverallAverage(tc.assessments)
			switch {
			case tc.want == nil && o.Average != nil:
				t.Errorf("Average = %v, want nil", *o.Average)
			case tc.want != nil && o.Average == nil:
				t.Errorf("Average = nil, want %v", *tc.want)
			case tc.want != nil && !near(*o.Average, *tc.want):
				t.Errorf("Average = %v, want %v", *o.Average, *tc.want)
			}
			if o.Invalid != tc.invalid {
				t.Errorf("Invalid = %d, want %d", o.Invalid, tc.invalid)
			}
			if got := o.PlansRequired(); got != tc.plans {
				t.Errorf("PlansRequired() = %v, want %v", got, tc.plans)
			}
		})
	}
}

func TestCategoryKey(t *testing.T) {
	if CategoryOf(nil) != Uncategorized {
		t.Error("CategoryOf(nil) should be the uncategorized key")
	}
	if CategoryOf(strp("x")) != Categorized("x") {
		t.Error("CategoryOf(&x) should equal Categorized(x)")
	}
	if Categorized("") == Uncategorized {
		t.Error("an empty category ID must not collide with the uncategorized key")
	}
	if id, ok := Categorized("x").ID(); !ok || id != "x" {
		t.Errorf("ID() = %q, %v; want x, true", id, ok)
	}
	if got := Uncategorized.String(); got != "(uncategorized)" {
		t.Errorf("String() = %q, want (uncategorized)", got)
	}
	if Uncategorized.Ref() != nil {
		t.Error("Uncategorized.Ref() should be nil")
	}
	if ref := Categorized("x").Ref(); ref == nil || *ref != "x" {
		t.Errorf("Categorized(x).Ref() = %v, want x", ref)
	}
}
