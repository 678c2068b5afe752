// Package l10n loads translated message catalogs and renders messages for a locale.
//
// Messages are declared next to the code that renders them, with the English text as the
// default. Catalogs under locales/ hold the translations, keyed by message ID.
package l10n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogs embed.FS

// Message is a translatable message with its English default text.
type Message = i18n.Message

// Bundle holds every loaded catalog. Safe for concurrent use once built.
type Bundle struct {
	bundle *i18n.Bundle
}

// NewBundle loads the embedded catalogs.
func NewBundle() (*Bundle, error) {
	return NewBundleFS(catalogs)
}

// NewBundleFS loads every locales/*.toml file from fsys.
func NewBundleFS(fsys fs.FS) (*Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	for _, file := range files {
		if _, err := b.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", file, err)
		}
	}
	return &Bundle{bundle: b}, nil
}

// Languages lists the languages that have catalogs, English first.
func (b *Bundle) Languages() []language.Tag {
	return b.bundle.LanguageTags()
}

// Localizer renders messages in one locale, falling back to English.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// Localizer returns a localizer for tag.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		localizer: i18n.NewLocalizer(b.bundle, tag.String()),
		tag:       tag,
	}
}

// Tag returns the locale this localizer was built for.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T renders msg with data as template values.
func (l *Localizer) T(msg *Message, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
}

// Plural renders the plural form of msg matching count. Count is also exposed as {{.Count}}.
func (l *Localizer) Plural(msg *Message, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Count"]; !ok {
		data["Count"] = count
	}
	return l.localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data, PluralCount: count})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	s, err := l.localizer.Localize(cfg)
	if err == nil {
		return s
	}
	// A missing translation still renders the default message.
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) && s != "" {
		return s
	}
	if s != "" {
		return s
	}
	return strings.TrimSpace(cfg.DefaultMessage.Other)
}
