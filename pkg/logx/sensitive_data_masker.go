package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Personal data entered on the page: JSON bodies of the API and urlencoded
// bodies of the form post.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("surname":\s?").+?(")`),
	regexp.MustCompile(`((?:^|[&\n])name=)[^&\r\n]+()`),
	regexp.MustCompile(`((?:^|[&\n])surname=)[^&\r\n]+()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
