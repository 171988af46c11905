// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n translates the strings shown by the terminal and command line
// hosts. The card core never goes through it: field formats such as MM/YY are
// the same in every language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files into the binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to English through the bundle's default.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// GetAvailableLocales maps each embedded locale tag to its name in that
// language.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}

// Languages returns the embedded locale tags in sorted order.
func Languages() []string {
	av := GetAvailableLocales()
	out := make([]string, 0, len(av))
	for k := range av {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T translates messageID. A single map argument is used as template data;
// other arguments are applied to the translation with fmt.Sprintf. When no
// translation exists the ID itself is returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
