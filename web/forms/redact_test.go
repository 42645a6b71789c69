package forms

import (
	"strings"
	"testing"

	"github.com/DivyaGovardhan/design-ui/database/model"
)

func TestRedactToInProgressRequiresComment(t *testing.T) {
	form := RedactForm{Status: "in_progress"}
	errs := form.Validate(model.StatusNew, nil, false)
	if len(errs.Of("designComment")) == 0 {
		t.Error("expected an error for an empty comment")
	}

	form.DesignComment = "смета согласована"
	errs = form.Validate(model.StatusNew, nil, false)
	if errs.HasAny() {
		t.Errorf("comment without photo must pass, got %v", errs)
	}
}

func TestRedactToDoneRequiresPhoto(t *testing.T) {
	form := RedactForm{Status: "done", DesignComment: "готово"}
	errs := form.Validate(model.StatusNew, nil, false)
	if len(errs.Of("designPhoto")) == 0 {
		t.Error("expected an error for a missing design photo regardless of comment")
	}

	errs = form.Validate(model.StatusNew, photoHeader("design.png", 1024), false)
	if errs.HasAny() {
		t.Errorf("valid photo must pass, got %v", errs)
	}
}

func TestRedactToDoneAcceptsExistingPhoto(t *testing.T) {
	// Re-editing a finished application must not demand a fresh upload.
	form := RedactForm{Status: "done"}
	errs := form.Validate(model.StatusDone, nil, true)
	if errs.HasAny() {
		t.Errorf("existing design photo must satisfy the requirement, got %v", errs)
	}
}

func TestRedactDesignPhotoRules(t *testing.T) {
	form := RedactForm{Status: "done"}

	errs := form.Validate(model.StatusNew, photoHeader("design.gif", 1024), false)
	if len(errs.Of("designPhoto")) == 0 {
		t.Error("expected an extension error")
	}

	errs = form.Validate(model.StatusNew, photoHeader("design.png", 2*1024*1024+1), false)
	if len(errs.Of("designPhoto")) == 0 {
		t.Error("expected a size error")
	}

	errs = form.Validate(model.StatusNew, photoHeader("design.png", 2*1024*1024), false)
	if len(errs.Of("designPhoto")) != 0 {
		t.Error("exactly 2 MiB must pass")
	}
}

func TestRedactCommentLength(t *testing.T) {
	form := RedactForm{Status: "in_progress", DesignComment: strings.Repeat("ы", 200)}
	if errs := form.Validate(model.StatusNew, nil, false); errs.HasAny() {
		t.Errorf("200-rune comment must pass, got %v", errs)
	}

	form.DesignComment = strings.Repeat("ы", 201)
	if errs := form.Validate(model.StatusNew, nil, false); len(errs.Of("designComment")) == 0 {
		t.Error("expected an error for a 201-rune comment")
	}
}

func TestRedactStatusLockedAfterLeavingNew(t *testing.T) {
	tests := []struct {
		name    string
		current model.AppStatus
		target  string
		wantErr bool
	}{
		{"new to in_progress", model.StatusNew, "in_progress", false},
		{"new to done skips a step", model.StatusNew, "done", false},
		{"in_progress back to new", model.StatusInProgress, "new", true},
		{"in_progress to done", model.StatusInProgress, "done", true},
		{"in_progress stays put", model.StatusInProgress, "in_progress", false},
		{"done stays put", model.StatusDone, "done", false},
		{"done back to new", model.StatusDone, "new", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := RedactForm{
				Status:        tt.target,
				DesignComment: "комментарий",
			}
			errs := form.Validate(tt.current, photoHeader("design.png", 1024), true)
			if got := len(errs.Of("status")) > 0; got != tt.wantErr {
				t.Errorf("%s -> %s: error = %v, expected %v", tt.current, tt.target, got, tt.wantErr)
			}
		})
	}
}

func TestRedactUnknownStatusRejected(t *testing.T) {
	form := RedactForm{Status: "archived"}
	errs := form.Validate(model.StatusNew, nil, false)
	if len(errs.Of("status")) == 0 {
		t.Error("expected an error for an unknown status")
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in     string
		status model.AppStatus
		ok     bool
	}{
		{"", "", true},
		{"new", model.StatusNew, true},
		{"in_progress", model.StatusInProgress, true},
		{"done", model.StatusDone, true},
		{"archived", "", false},
	}

	for _, tt := range tests {
		status, ok := ParseStatusFilter(tt.in)
		if status != tt.status || ok != tt.ok {
			t.Errorf("ParseStatusFilter(%q) = (%q, %v), expected (%q, %v)", tt.in, status, ok, tt.status, tt.ok)
		}
	}
}
