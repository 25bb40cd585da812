package dto

type HydrateInput struct {
	// KnownIDs, when non-nil, prunes completion records whose id is not in
	// the dataset.
	KnownIDs []int
}

type HydrateOutput struct {
	Shape     string
	Count     int
	Pruned    []int
	Dropped   []string
	Repaired  []int
	Recovered bool
}

type RecordOutput struct {
	ProblemID     int
	Completed     bool
	DateCompleted string
	Source        string
}

type ClearOutput struct {
	Cleared bool
	Removed int
}

type SummaryOutput struct {
	Completed int
	Total     int
	Percent   int
}
