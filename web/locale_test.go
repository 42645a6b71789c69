package web

import (
	"testing"

	"github.com/DivyaGovardhan/design-ui/web/locale"
)

func TestLocalizersResolveIndependently(t *testing.T) {
	if err := locale.InitLocalizer(i18nFS); err != nil {
		t.Fatal(err)
	}

	ru := locale.NewLocalizer("ru-RU")
	en := locale.NewLocalizer("en-US")

	// Two localizers side by side must not affect each other.
	if got := locale.Localize(ru, "pages.login.title"); got != "Вход" {
		t.Errorf("ru login title = %q", got)
	}
	if got := locale.Localize(en, "pages.login.title"); got != "Login" {
		t.Errorf("en login title = %q", got)
	}
	if got := locale.Localize(ru, "pages.login.title"); got != "Вход" {
		t.Errorf("ru login title after en use = %q", got)
	}

	if got := locale.Localize(en, "pages.index.inProgress", "Count==3"); got != "Applications in progress: 3" {
		t.Errorf("templated message = %q", got)
	}
}

func TestLocalizeBeforeInitReturnsKey(t *testing.T) {
	if got := locale.Localize(nil, "pages.login.title"); got != "pages.login.title" {
		t.Errorf("nil localizer = %q", got)
	}
}
