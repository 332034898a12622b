package journey

import "testing"

func TestStageIndex_Thresholds(t *testing.T) {
	tests := []struct {
		engagement int
		want       int
	}{
		{-5, 0},
		{0, 0},
		{29, 0},
		{30, 1},
		{49, 1},
		{50, 2},
		{69, 2},
		{70, 3},
		{89, 3},
		{90, 4},
		{100, 4},
		{250, 4},
	}

	for _, tt := range tests {
		if got := StageIndex(tt.engagement); got != tt.want {
			t.Fatalf("StageIndex(%d) = %d, want %d", tt.engagement, got, tt.want)
		}
	}
}

func TestComputeProgress(t *testing.T) {
	progress := ComputeProgress(72)

	if progress.Engagement != 72 {
		t.Fatalf("expected engagement 72, got %d", progress.Engagement)
	}
	if progress.CurrentStage != "evaluation" {
		t.Fatalf("expected evaluation stage, got %s", progress.CurrentStage)
	}
	if len(progress.Stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(progress.Stages))
	}
	for i, stage := range progress.Stages {
		if stage.Completed != (i <= 3) {
			t.Fatalf("stage %s completed = %v", stage.ID, stage.Completed)
		}
		if stage.Current != (i == 3) {
			t.Fatalf("stage %s current = %v", stage.ID, stage.Current)
		}
	}
}

func TestComputeProgress_ClampsEngagement(t *testing.T) {
	if got := ComputeProgress(140).Engagement; got != 100 {
		t.Fatalf("expected engagement clamped to 100, got %d", got)
	}
	low := ComputeProgress(-10)
	if low.Engagement != 0 || low.CurrentStage != "awareness" {
		t.Fatalf("unexpected low progress: %+v", low)
	}
	if !low.Stages[0].Completed || low.Stages[1].Completed {
		t.Fatalf("only the first stage should be completed: %+v", low.Stages)
	}
}

func TestStages_ReturnsCopy(t *testing.T) {
	got := Stages()
	got[0].Label = "changed"
	if Stages()[0].Label != "Awareness" {
		t.Fatalf("stages should not be mutable through the returned slice")
	}
}
