package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Translate(b *Bundle, lang language.Tag) string
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using the default language of a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider backed by bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the untranslated pattern for key, or key itself when missing
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	if msg, ok := p.bundle.message(key); ok {
		return msg
	}

	return key
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := NewError("goflag.error.empty_flag")
//	err = err.WithArgs("field", "value")
//	err = err.Wrap(originalError)
type TrError struct {
	// sentinel is shared by every copy derived from the same NewError call
	sentinel *sentinel
	key      string
	args     []interface{}
	wrapped  error
	provider MessageProvider
}

type sentinel struct{ key string }

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: &sentinel{key: key},
		key:      key,
	}
}

// Error returns the default-language message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.messageProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// Translate renders the error in lang using b. Wrapped translatable errors are
// translated too.
func (e *TrError) Translate(b *Bundle, lang language.Tag) string {
	msg := b.TL(lang, e.key, e.args...)
	if e.wrapped == nil {
		return msg
	}

	var tr TranslatableError
	if errors.As(e.wrapped, &tr) {
		return msg + ": " + tr.Translate(b, lang)
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
		provider: e.provider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
		provider: e.provider,
	}
}

// Is reports whether target was derived from the same NewError call
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)

	return ok && e.sentinel == t.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider overrides the provider used by Error
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}

func (e *TrError) messageProvider() MessageProvider {
	if e.provider != nil {
		return e.provider
	}

	return getDefaultProvider()
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
