package ui

import (
	"testing"

	"fyne.io/fyne/v2/widget"

	"github.com/alvindimas05/tnsm-installer/internal/status"
)

// TestImportanceFor tests the status kind to label color mapping
func TestImportanceFor(t *testing.T) {
	tests := []struct {
		kind status.Kind
		want widget.Importance
	}{
		{status.Info, widget.MediumImportance},
		{status.Success, widget.SuccessImportance},
		{status.Warning, widget.WarningImportance},
		{status.Error, widget.DangerImportance},
	}

	for _, tt := range tests {
		if got := importanceFor(tt.kind); got != tt.want {
			t.Errorf("importanceFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
