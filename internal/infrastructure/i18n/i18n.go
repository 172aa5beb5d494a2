// Package i18n translates screen labels from TOML message files.
package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultLanguage is used for missing translations
var DefaultLanguage = language.English

// Translator implements the screens' Localizer
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
	log       *slog.Logger
}

// New loads every *.toml message file in dir and localizes to lang.
// An empty or unparsable lang falls back to the default language.
func New(fsys fs.FS, dir, lang string, log *slog.Logger) (*Translator, error) {
	if log == nil {
		log = slog.Default()
	}
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no message files in %s", dir)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f, err)
		}
	}

	tag := DefaultLanguage
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			log.Warn("unknown language, using default", "lang", lang, "default", DefaultLanguage.String())
		} else {
			tag = parsed
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String()),
		tag:       tag,
		log:       log,
	}, nil
}

// Language returns the requested language
func (t *Translator) Language() language.Tag { return t.tag }

// Languages returns every language with a message file
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// T translates id with optional template data. Unknown ids translate to
// themselves so a missing message is visible instead of blank.
func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg == "" {
		t.log.Debug("missing translation", "id", id, "lang", t.tag.String(), "err", err)
		return id
	}
	return msg
}
