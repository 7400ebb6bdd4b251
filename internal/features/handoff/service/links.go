package service

import (
	"net/url"
	"strings"
)

// encodeComponent percent-encodes a string for use inside a deep-link query
// value. Spaces become %20 rather than + so chat apps render the text as sent.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// digitsOnly strips everything but 0-9 from a phone number.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppURL builds a wa.me deep link carrying the message text.
func WhatsAppURL(phone, text string) string {
	return "https://wa.me/" + digitsOnly(phone) + "?text=" + encodeComponent(text)
}

// MailtoURL builds a mailto link with a subject and body.
func MailtoURL(email, subject, body string) string {
	return "mailto:" + email + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}
