package state

import (
	_ "embed"
	"strings"
	"sync"

	"basement/pkg/game/content"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/en.po
var enPo []byte

var loadOnce sync.Once

// LoadTranslations installs the built-in English catalogue as the default
// gotext storage. Safe to call more than once.
func LoadTranslations() {
	loadOnce.Do(func() {
		po := gotext.NewPo()
		po.Parse(enPo)
		locale := gotext.NewLocale("", "en")
		locale.AddTranslator("default", po)
		gotext.SetStorage(locale)
	})
}

// DisplayName turns a content id like ROCK_IN_FLIGHT into "rock"
func DisplayName(id string) string {
	id = strings.TrimSuffix(id, content.InFlightSuffix)
	return strings.ToLower(strings.ReplaceAll(id, "_", " "))
}
