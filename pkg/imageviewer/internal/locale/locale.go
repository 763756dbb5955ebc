// Package locale provides the translated strings shown in the viewer chrome.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message identifiers.
const (
	PageCounter  = "PageCounter"
	EmptyGallery = "EmptyGallery"
	LoadFailed   = "LoadFailed"
	HintClose    = "HintClose"
	HintNavigate = "HintNavigate"
	HintAction   = "HintAction"
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			bundleErr = fmt.Errorf("read embedded messages: %w", err)
			return
		}
		for _, entry := range entries {
			name := path.Join("messages", entry.Name())
			data, err := messageFS.ReadFile(name)
			if err != nil {
				bundleErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = fmt.Errorf("parse %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Localizer renders viewer strings for one language.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New creates a Localizer for lang, falling back to English for unknown
// languages and missing messages.
func New(lang string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		matcher := language.NewMatcher(b.LanguageTags())
		tag, _, _ = matcher.Match(parsed)
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(b, lang, language.English.String()),
		tag:       tag,
	}, nil
}

// Language returns the best supported match for the requested language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the translation of id, or id itself if it is unknown.
func (l *Localizer) Text(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Counter returns the "N of M" label for a zero based index.
func (l *Localizer) Counter(index, total int) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:   PageCounter,
		PluralCount: total,
		TemplateData: map[string]int{
			"Current": index + 1,
			"Total":   total,
		},
	})
	if err != nil {
		return fmt.Sprintf("%d / %d", index+1, total)
	}
	return msg
}
