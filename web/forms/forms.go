// Package forms implements field-level and cross-field validation for
// every user-submitted form in the panel. Validation messages are locale
// keys resolved at render time, so the same form works for any language.
package forms

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FormLevel is the Errors key for messages not attached to a single field.
const FormLevel = ""

// MaxPhotoSize is the inclusive upper bound for uploaded photos.
const MaxPhotoSize = 2 * 1024 * 1024

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

// Errors maps a field name to its validation message keys.
type Errors map[string][]string

func (e Errors) Add(field, key string) {
	e[field] = append(e[field], key)
}

// HasAny reports whether any field or the form itself failed validation.
func (e Errors) HasAny() bool {
	return len(e) > 0
}

// Of returns the message keys attached to the given field.
func (e Errors) Of(field string) []string {
	return e[field]
}

// checkPhoto validates an uploaded photo against the extension whitelist
// and the size limit. The upload is fully buffered before this runs, so
// Size is the complete payload size. Exactly MaxPhotoSize passes.
func checkPhoto(errs Errors, field string, photo *multipart.FileHeader) {
	ext := strings.ToLower(filepath.Ext(photo.Filename))
	if !allowedPhotoExts[ext] {
		errs.Add(field, "form.photoExtension")
		return
	}
	if photo.Size > MaxPhotoSize {
		errs.Add(field, "form.photoTooLarge")
	}
}
