package render

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatPrisma Format = "prisma"
	FormatYAML   Format = "yaml"
	FormatGo     Format = "go"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name case-insensitively; empty means prisma.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPrisma, nil
	case FormatPrisma, FormatYAML, FormatGo:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}
