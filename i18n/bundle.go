package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the translations of every message key, per language, and the x/text
// printers used to format them.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundle     *Bundle
	defaultBundleOnce sync.Once
)

// Default returns the bundle built from the embedded locales. It panics if the embedded
// locales are broken, which can only happen with a bad build.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle returns a bundle loaded with the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without any translations
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. The English file is
// loaded first: every other language is validated against it.
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.loadEmbeddedWithFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}
	b.rebuildMatcher()

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	lang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(lang, key, args...)
}

// TL returns the translation for the given key in lang. Unknown languages fall back to
// the closest supported match and then to the default language; unknown keys are
// returned verbatim.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.hasKey(lang, key) {
		lang = b.match(lang)
	}
	if !b.hasKey(lang, key) {
		lang = b.defaultLang
	}
	if !b.hasKey(lang, key) {
		return key
	}

	return b.printers[lang].Sprintf(key, args...)
}

// AddLanguage adds a language to the bundle, merging with existing translations. A new
// non-default language must define exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if lang != b.defaultLang && original == nil {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			if original == nil {
				delete(b.translations, lang)
			} else {
				b.translations[lang] = original
			}
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.rebuildMatcher()

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.languages()
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.hasKey(lang, key)
}

// DefaultLanguage returns the fallback language of the bundle
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// message returns the untranslated pattern stored for key in the default language
func (b *Bundle) message(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	msg, ok := b.translations[b.defaultLang][key]

	return msg, ok
}

func (b *Bundle) hasKey(lang language.Tag, key string) bool {
	translations, exists := b.translations[lang]
	if !exists {
		return false
	}
	_, exists = translations[key]

	return exists
}

func (b *Bundle) match(lang language.Tag) language.Tag {
	if b.matcher == nil {
		return b.defaultLang
	}
	_, idx, conf := b.matcher.Match(lang)
	if conf == language.No {
		return b.defaultLang
	}

	return b.languages()[idx]
}

func (b *Bundle) languages() []language.Tag {
	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

func (b *Bundle) rebuildMatcher() {
	b.matcher = language.NewMatcher(b.languages())
}

func (b *Bundle) loadEmbeddedWithFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if lang != b.defaultLang {
			deferred = append(deferred, entry.Name())
			continue
		}
		if err := b.processLangFile(fs, lang, path.Join(dirPrefix, entry.Name())); err != nil {
			return err
		}
	}

	for _, name := range deferred {
		lang := language.MustParse(strings.TrimSuffix(name, ".json"))
		if err := b.processLangFile(fs, lang, path.Join(dirPrefix, name)); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations := b.translations[lang]
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}

	defaults, exists := b.translations[b.defaultLang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, b.defaultLang)}
	}

	for key := range defaults {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, exists := defaults[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
