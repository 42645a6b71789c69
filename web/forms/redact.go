package forms

import (
	"mime/multipart"
	"unicode/utf8"

	"github.com/DivyaGovardhan/design-ui/database/model"
)

const maxCommentLen = 200

// RedactForm carries the staff-side edit of an application: the target
// status plus the resolution artifacts tied to it.
type RedactForm struct {
	Status        string `form:"status"`
	DesignComment string `form:"designComment"`
	CategoryIds   []int  `form:"categories"`
}

// Validate evaluates the per-target-state requirements. current is the
// status stored before this edit; hasDesignPhoto reports whether a design
// photo is already on file, so a re-edit of a finished application does
// not demand a fresh upload.
func (f *RedactForm) Validate(current model.AppStatus, photo *multipart.FileHeader, hasDesignPhoto bool) Errors {
	errs := Errors{}

	target := model.AppStatus(f.Status)
	if !model.ValidStatus(target) {
		errs.Add("status", "form.statusInvalid")
		return errs
	}

	// Once the application has left "new" the status field is locked;
	// comment and photo stay editable.
	if current != model.StatusNew && target != current {
		errs.Add("status", "form.statusLocked")
	}

	if utf8.RuneCountInString(f.DesignComment) > maxCommentLen {
		errs.Add("designComment", "form.commentTooLong")
	}

	if target == model.StatusInProgress && f.DesignComment == "" {
		errs.Add("designComment", "form.commentRequired")
	}

	if target == model.StatusDone && photo == nil && !hasDesignPhoto {
		errs.Add("designPhoto", "form.designPhotoRequired")
	}

	if photo != nil {
		checkPhoto(errs, "designPhoto", photo)
	}

	return errs
}

// ParseStatusFilter maps a ?status= query value to a status filter.
// The empty value selects all rows; anything unknown is rejected.
func ParseStatusFilter(s string) (model.AppStatus, bool) {
	if s == "" {
		return "", true
	}
	st := model.AppStatus(s)
	if model.ValidStatus(st) {
		return st, true
	}
	return "", false
}
