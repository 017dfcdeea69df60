package scoring

// CategoryKey identifies the bucket a question belongs to: either a real
// category or the uncategorized bucket. The zero value is the uncategorized
// bucket, so no category ID can collide with it.
type CategoryKey struct {
	id  string
	set bool
}

// Uncategorized is the bucket for questions and plans without a category.
var Uncategorized = CategoryKey{}

// CategoryOf returns the key for an optional category reference.
func CategoryOf(id *string) CategoryKey {
	if id == nil {
		return Uncategorized
	}
	return CategoryKey{id: *id, set: true}
}

// Categorized returns the key for a real category.
func Categorized(id string) CategoryKey {
	return CategoryKey{id: id, set: true}
}

// ID returns the category ID and whether the key names a real category.
func (k CategoryKey) ID() (string, bool) {
	return k.id, k.set
}

// IsUncategorized reports whether k is the uncategorized bucket.
func (k CategoryKey) IsUncategorized() bool {
	return !k.set
}

// Ref returns the key as an optional category ID for serialization.
func (k CategoryKey) Ref() *string {
	if !k.set {
		return nil
	}
	id := k.id
	return &id
}

func (k CategoryKey) String() string {
	if !k.set {
		return "(uncategorized)"
	}
	return k.id
}

// ProcessedQuestion is the per-question aggregate.
type ProcessedQuestion struct {
	QuestionID string `json:"questionId"`
	Order      int    `json:"order"`

	// AverageScore is 0 when ResponseCount is 0.
	AverageScore  float64      `json:"averageScore"`
	ResponseCount int          `json:"responseCount"`
	Distribution  Distribution `json:"responseDistribution"`
	Risk          Risk         `json:"riskLabel"`

	// values are the individual scored values, in input order, kept so the
	// category aggregate can weight by response.
	values []float64
}

// Average returns the question's average, or nil without responses.
func (q ProcessedQuestion) Average() *float64 {
	if q.ResponseCount == 0 {
		return nil
	}
	avg := q.AverageScore
	return &avg
}

// ProcessedCategory is the per-category aggregate.
type ProcessedCategory struct {
	Key CategoryKey `json:"-"`

	// CategoryID is nil for the uncategorized bucket.
	CategoryID  *string `json:"categoryId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Order       int     `json:"order"`

	// AverageScore is response-weighted across all questions and is 0 when
	// ResponseCount is 0.
	AverageScore  float64             `json:"averageScore"`
	ResponseCount int                 `json:"responseCount"`
	Distribution  Distribution        `json:"responseDistribution"`
	Risk          Risk                `json:"riskLabel"`
	Questions     []ProcessedQuestion `json:"questions"`
}

// Average returns the category's average, or nil when it has no responses.
func (c ProcessedCategory) Average() *float64 {
	if c.ResponseCount == 0 {
		return nil
	}
	avg := c.AverageScore
	return &avg
}
