package locale

import (
	"embed"
	"io/fs"
	"strings"
	"sync/atomic"

	"github.com/DivyaGovardhan/design-ui/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	i18nBundle *i18n.Bundle

	// webLocalizer holds the most recently negotiated localizer for
	// template rendering, which has no request context to read from.
	webLocalizer atomic.Pointer[i18n.Localizer]
)

type I18nType string

const (
	Web I18nType = "web"
)

func InitLocalizer(i18nFS embed.FS) error {
	// set default bundle to english
	i18nBundle = i18n.NewBundle(language.MustParse("en-US"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return parseTranslationFiles(i18nFS, i18nBundle)
}

// NewLocalizer builds a localizer for the given language preference.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(i18nBundle, lang)
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	var sep string = "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// Localize resolves a message key against a specific localizer.
func Localize(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		// Localizer not ready; returning the key prevents a nil panic
		// early in startup.
		return key
	}

	templateData := createTemplateData(params)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		logger.Errorf("Failed to localize message: %v", err)
		return ""
	}

	return msg
}

// I18n resolves a message key against the current web localizer. Handlers
// holding a gin context should prefer the per-request localizer stored
// there; this entry point serves template functions.
func I18n(i18nType I18nType, key string, params ...string) string {
	if i18nType != Web {
		logger.Errorf("Invalid type for I18n: %s", i18nType)
		return ""
	}
	return Localize(webLocalizer.Load(), key, params...)
}

func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		localizer := NewLocalizer(lang)
		webLocalizer.Store(localizer)
		c.Set("localizer", localizer)
		c.Next()
	}
}

func parseTranslationFiles(i18nFS embed.FS, i18nBundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}

			_, err = i18nBundle.ParseMessageFileBytes(data, path)
			return err
		})
}
