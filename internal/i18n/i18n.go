// Package i18n provides internationalization support for the cafe service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "id-ID,id;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations. The shop
// operates in Indonesia, so Indonesian ships alongside English.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.invalid_credentials":     "Invalid email or password",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.forbidden":               "Forbidden",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.validation.daily_target": "daily_target: must be a positive integer",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.timeout":                 "Request timed out",

			// Success messages
			"success.shopping_list": "Shopping list projected successfully",
			"success.sale_recorded": "Sale recorded successfully",
		},
		"id": {
			// Error messages
			"error.invalid_request":         "Permintaan tidak valid",
			"error.invalid_request_body":    "Isi permintaan tidak valid",
			"error.internal_error":          "Terjadi kesalahan tak terduga",
			"error.unauthorized":            "Tidak terotorisasi",
			"error.invalid_credentials":     "Email atau kata sandi salah",
			"error.api_key_required":        "Kunci API diperlukan",
			"error.invalid_api_key":         "Kunci API tidak valid",
			"error.forbidden":               "Dilarang",
			"error.not_found":               "Tidak ditemukan",
			"error.rate_limit_exceeded":     "Terlalu banyak permintaan, coba lagi nanti",
			"error.conflict":                "Konflik",
			"error.validation.daily_target": "daily_target: harus bilangan bulat positif",
			"error.invalid_token":           "Token tidak valid atau kedaluwarsa",
			"error.token_required":          "Token autentikasi diperlukan",
			"error.timeout":                 "Permintaan melebihi batas waktu",

			// Success messages
			"success.shopping_list": "Daftar belanja berhasil dihitung",
			"success.sale_recorded": "Penjualan berhasil dicatat",
		},
	}
}
