package forms

import (
	"mime/multipart"
	"time"
)

const dateLayout = "2006-01-02"

// timeLayouts accepts both the zero-padded value an HTML time input
// sends and a hand-typed one like "9:00".
var timeLayouts = []string{"15:04", "3:04"}

// ApplicationForm carries the submission inputs for a new design
// application. The photo arrives separately as a multipart header.
type ApplicationForm struct {
	Title          string `form:"title"`
	Description    string `form:"description"`
	CategoryIds    []int  `form:"categories"`
	CompletionDate string `form:"completionDate"`
	CompletionTime string `form:"completionTime"`
}

// Validate checks the submission fields. now anchors the completion-date
// window to the submission day.
func (f *ApplicationForm) Validate(photo *multipart.FileHeader, now time.Time) Errors {
	errs := Errors{}

	if f.Title == "" {
		errs.Add("title", "form.required")
	}
	if f.Description == "" {
		errs.Add("description", "form.required")
	}

	if photo == nil {
		errs.Add("photo", "form.photoRequired")
	} else {
		checkPhoto(errs, "photo", photo)
	}

	if f.CompletionDate != "" {
		if d, err := time.ParseInLocation(dateLayout, f.CompletionDate, now.Location()); err != nil {
			errs.Add("completionDate", "form.dateNotAllowed")
		} else if !completionDateAllowed(d, now) {
			errs.Add("completionDate", "form.dateNotAllowed")
		}
	}

	if f.CompletionTime != "" {
		if t, err := parseClock(f.CompletionTime); err != nil {
			errs.Add("completionTime", "form.timeWindow")
		} else if !completionTimeAllowed(t) {
			errs.Add("completionTime", "form.timeWindow")
		}
	}

	return errs
}

// completionDateAllowed rejects past dates and exactly tomorrow. The
// tomorrow exclusion is deliberate and mirrors the behavior the studio
// asked for; the day after tomorrow is the first selectable date besides
// today.
func completionDateAllowed(d, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return false
	}
	return !day.Equal(tomorrow)
}

func parseClock(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// completionTimeAllowed accepts 09:00 through 19:00 inclusive.
func completionTimeAllowed(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= 9*60 && minutes <= 19*60
}
