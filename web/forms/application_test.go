package forms

import (
	"mime/multipart"
	"testing"
	"time"
)

func photoHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func validApplication() ApplicationForm {
	return ApplicationForm{
		Title:       "Кухня",
		Description: "Перепланировка кухни",
	}
}

var submissionNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestApplicationPhotoRequired(t *testing.T) {
	form := validApplication()
	errs := form.Validate(nil, submissionNow)
	if len(errs.Of("photo")) == 0 {
		t.Error("expected an error for a missing photo")
	}
}

func TestApplicationPhotoExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"room.jpg", false},
		{"room.jpeg", false},
		{"room.png", false},
		{"room.bmp", false},
		{"room.JPG", false},
		{"room.gif", true},
		{"room.pdf", true},
		{"room", true},
	}

	for _, tt := range tests {
		form := validApplication()
		errs := form.Validate(photoHeader(tt.filename, 1024), submissionNow)
		if got := len(errs.Of("photo")) > 0; got != tt.wantErr {
			t.Errorf("photo %q: error = %v, expected %v", tt.filename, got, tt.wantErr)
		}
	}
}

func TestApplicationPhotoSizeBoundary(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 1024, false},
		{"exactly 2 MiB passes", 2 * 1024 * 1024, false},
		{"one byte over fails", 2*1024*1024 + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validApplication()
			errs := form.Validate(photoHeader("room.jpg", tt.size), submissionNow)
			if got := len(errs.Of("photo")) > 0; got != tt.wantErr {
				t.Errorf("size %d: error = %v, expected %v", tt.size, got, tt.wantErr)
			}
		})
	}
}

func TestApplicationCompletionDateWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today passes", "2024-05-10", false},
		{"yesterday fails", "2024-05-09", true},
		{"tomorrow fails", "2024-05-11", true},
		{"day after tomorrow passes", "2024-05-12", false},
		{"far future passes", "2024-06-01", false},
		{"garbage fails", "not-a-date", true},
		{"empty is optional", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validApplication()
			form.CompletionDate = tt.date
			errs := form.Validate(photoHeader("room.jpg", 1024), submissionNow)
			if got := len(errs.Of("completionDate")) > 0; got != tt.wantErr {
				t.Errorf("date %q: error = %v, expected %v", tt.date, got, tt.wantErr)
			}
		})
	}
}

func TestApplicationCompletionTimeWindow(t *testing.T) {
	tests := []struct {
		time    string
		wantErr bool
	}{
		{"09:00", false},
		{"9:00", false},
		{"12:30", false},
		{"19:00", false},
		{"08:59", true},
		{"8:59", true},
		{"19:01", true},
		{"00:00", true},
		{"not-a-time", true},
		{"", false},
	}

	for _, tt := range tests {
		form := validApplication()
		form.CompletionTime = tt.time
		errs := form.Validate(photoHeader("room.jpg", 1024), submissionNow)
		if got := len(errs.Of("completionTime")) > 0; got != tt.wantErr {
			t.Errorf("time %q: error = %v, expected %v", tt.time, got, tt.wantErr)
		}
	}
}

func TestApplicationRequiredFields(t *testing.T) {
	form := ApplicationForm{}
	errs := form.Validate(photoHeader("room.jpg", 1024), submissionNow)
	if len(errs.Of("title")) == 0 {
		t.Error("expected an error for a missing title")
	}
	if len(errs.Of("description")) == 0 {
		t.Error("expected an error for a missing description")
	}
}
