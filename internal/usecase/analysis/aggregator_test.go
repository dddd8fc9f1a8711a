package analysis

import (
	"reflect"
	"testing"

	"github.com/talentlens/talentlens/internal/domain/entities"
)

func TestComputeAllMetrics_NoEyeContactReading(t *testing.T) {
	result := ComputeAllMetrics(Input{Transcript: "I enjoy shipping reliable software."})

	if result.AppearanceScore != 0 || result.EyeContactPercent != 0 {
		t.Errorf("absent eye-contact reading must score 0, got appearance=%d percent=%d",
			result.AppearanceScore, result.EyeContactPercent)
	}
}

func TestComputeAllMetrics_ZeroEyeContactIsAReading(t *testing.T) {
	zero := 0
	result := ComputeAllMetrics(Input{Transcript: "Some answer.", EyeContactPercent: &zero})
	if result.AppearanceScore != 0 || result.EyeContactPercent != 0 {
		t.Errorf("explicit 0%% reading: appearance=%d percent=%d", result.AppearanceScore, result.EyeContactPercent)
	}
}

func TestComputeAllMetrics_EyeContactMapsToAppearance(t *testing.T) {
	percent := 72
	result := ComputeAllMetrics(Input{Transcript: "Some answer.", EyeContactPercent: &percent})
	if result.AppearanceScore != 72 {
		t.Errorf("appearance = %d, want 72", result.AppearanceScore)
	}
	if result.EyeContactPercent != 72 {
		t.Errorf("eye contact percent = %d, want 72", result.EyeContactPercent)
	}
}

func TestComputeAllMetrics_AppearanceClamped(t *testing.T) {
	percent := 150
	result := ComputeAllMetrics(Input{EyeContactPercent: &percent})
	if result.AppearanceScore != 100 {
		t.Errorf("appearance = %d, want 100 (clamped)", result.AppearanceScore)
	}
}

func TestComputeAllMetrics_DefaultPausesFromFillers(t *testing.T) {
	result := ComputeAllMetrics(Input{Transcript: "Um, well, um, I think, um, yes."})
	if result.Pauses.EstimatedPauses != 3 {
		t.Errorf("estimated pauses = %d, want 3", result.Pauses.EstimatedPauses)
	}
	if result.Pauses.HesitationScore != 85 {
		t.Errorf("hesitation = %d, want 85", result.Pauses.HesitationScore)
	}
}

func TestComputeAllMetrics_HesitationOverride(t *testing.T) {
	override := &entities.PauseInfo{EstimatedPauses: 12, HesitationScore: 40}
	result := ComputeAllMetrics(Input{Transcript: "Um, a hesitant answer.", HesitationOverride: override})
	if result.Pauses != *override {
		t.Errorf("pauses = %+v, want override %+v", result.Pauses, *override)
	}
}

func TestComputeAllMetrics_Idempotent(t *testing.T) {
	percent := 64
	in := Input{
		Transcript:        "We shipped the release. It was a great success. The team improved every sprint.",
		EyeContactPercent: &percent,
	}
	a := ComputeAllMetrics(in)
	b := ComputeAllMetrics(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", a, b)
	}
}
