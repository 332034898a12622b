package journey

// Stage is one step of a stakeholder's buying journey.
type Stage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var stages = []Stage{
	{ID: "awareness", Label: "Awareness"},
	{ID: "education", Label: "Education"},
	{ID: "consideration", Label: "Consideration"},
	{ID: "evaluation", Label: "Evaluation"},
	{ID: "decision", Label: "Decision"},
}

// thresholds[i] is the lowest engagement of stage len(thresholds)-i.
var thresholds = []int{90, 70, 50, 30}

// Stages returns the journey stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// ClampEngagement bounds an engagement score to [0,100].
func ClampEngagement(engagement int) int {
	if engagement < 0 {
		return 0
	}
	if engagement > 100 {
		return 100
	}
	return engagement
}

// StageIndex maps an engagement score to the index of the current stage.
func StageIndex(engagement int) int {
	engagement = ClampEngagement(engagement)
	for i, threshold := range thresholds {
		if engagement >= threshold {
			return len(thresholds) - i
		}
	}
	return 0
}

// StageProgress is one stage annotated for a given engagement.
type StageProgress struct {
	Stage
	Completed bool `json:"completed"`
	Current   bool `json:"current"`
}

// Progress describes where a stakeholder sits in the journey.
type Progress struct {
	Engagement   int             `json:"engagement"`
	CurrentStage string          `json:"current_stage"`
	Stages       []StageProgress `json:"stages"`
}

// ComputeProgress annotates every stage for the engagement score. Stages up to
// and including the current one are completed.
func ComputeProgress(engagement int) Progress {
	engagement = ClampEngagement(engagement)
	current := StageIndex(engagement)

	progress := Progress{
		Engagement:   engagement,
		CurrentStage: stages[current].ID,
		Stages:       make([]StageProgress, 0, len(stages)),
	}
	for i, stage := range stages {
		progress.Stages = append(progress.Stages, StageProgress{
			Stage:     stage,
			Completed: i <= current,
			Current:   i == current,
		})
	}
	return progress
}
