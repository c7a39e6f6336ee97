package validator

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Field length bounds enforced on every write path. These mirror the
// CHECK constraints on the corresponding table columns.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMinLen = 10
	DescriptionMaxLen = 5000
	ClaimMinLen       = 5
	ClaimMaxLen       = 2000
	LocationMaxLen    = 200
	PasswordMinLen    = 8
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooShort       = fmt.Errorf("title must be at least %d characters long", TitleMinLen)
	ErrTitleTooLong        = fmt.Errorf("title must be less than %d characters", TitleMaxLen+1)
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooShort = fmt.Errorf("description must be at least %d characters long", DescriptionMinLen)
	ErrDescriptionTooLong  = fmt.Errorf("description must be less than %d characters", DescriptionMaxLen+1)
	ErrClaimRequired       = errors.New("claim text is required")
	ErrClaimTooShort       = fmt.Errorf("claim must be at least %d characters long", ClaimMinLen)
	ErrClaimTooLong        = fmt.Errorf("claim must be less than %d characters", ClaimMaxLen+1)
	ErrLocationTooLong     = fmt.Errorf("location must be less than %d characters", LocationMaxLen+1)
	ErrInvalidEmail        = errors.New("invalid email address")
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password strength. Every unmet rule is
// reported so the caller can surface all of them at once.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < PasswordMinLen {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters long", PasswordMinLen))
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "password must contain at least one number")
	}

	return errs
}

// ValidateTitle checks report/fact-check title bounds after trimming.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return ErrTitleRequired
	case len(trimmed) < TitleMinLen:
		return ErrTitleTooShort
	case len(trimmed) > TitleMaxLen:
		return ErrTitleTooLong
	}
	return nil
}

// ValidateDescription checks report description bounds after trimming.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	switch {
	case trimmed == "":
		return ErrDescriptionRequired
	case len(trimmed) < DescriptionMinLen:
		return ErrDescriptionTooShort
	case len(trimmed) > DescriptionMaxLen:
		return ErrDescriptionTooLong
	}
	return nil
}

// ValidateClaim checks fact-check claim bounds after trimming.
func ValidateClaim(claim string) error {
	trimmed := strings.TrimSpace(claim)
	switch {
	case trimmed == "":
		return ErrClaimRequired
	case len(trimmed) < ClaimMinLen:
		return ErrClaimTooShort
	case len(trimmed) > ClaimMaxLen:
		return ErrClaimTooLong
	}
	return nil
}

// ValidateLocation checks the optional location field. Empty is fine.
func ValidateLocation(location string) error {
	if len(strings.TrimSpace(location)) > LocationMaxLen {
		return ErrLocationTooLong
	}
	return nil
}

// ValidateURL reports whether s parses as an absolute URL.
func ValidateURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeText escapes HTML-significant characters and trims the
// result. Applied to free text before it is persisted.
func SanitizeText(text string) string {
	return strings.TrimSpace(htmlEscaper.Replace(text))
}

var (
	scriptRe    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// SanitizeForDisplay strips HTML tags but keeps line breaks.
func SanitizeForDisplay(text string) string {
	text = scriptRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SanitizeUserInput escapes HTML, normalizes line endings to LF and
// collapses runs of three or more newlines.
func SanitizeUserInput(input string) string {
	s := SanitizeText(input)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return blankRunsRe.ReplaceAllString(s, "\n\n")
}
