package normalize

import (
	"strings"
	"unicode"
)

// Name lowercases the stem, trims surrounding whitespace from it, and
// collapses each run of internal spaces into a single underscore.
// The extension is appended back verbatim.
//
// Trimming can expose a different split: " .A B" becomes the dotfile
// ".A B", whose whole name is now stem. Passes repeat until the result is
// stable, so Name(Name(n)) == Name(n) for every n. Each pass that changes
// anything removes whitespace, a space or an uppercase rune and never adds
// one, so the loop terminates.
func Name(name string) string {
	out := clean(name)
	for {
		next := clean(out)
		if next == out {
			return out
		}
		out = next
	}
}

func clean(name string) string {
	stem, ext := SplitExt(name)
	stem = strings.TrimSpace(stem)

	var b strings.Builder
	b.Grow(len(stem) + len(ext))
	var last rune
	for _, r := range stem {
		switch {
		case unicode.IsUpper(r):
			r = unicode.ToLower(r)
		case r == ' ':
			// Nothing written yet, or already behind an underscore.
			if b.Len() == 0 || last == '_' {
				continue
			}
			r = '_'
		}
		b.WriteRune(r)
		last = r
	}
	b.WriteString(ext)
	return b.String()
}

// IsClean reports whether name is already in normalized form.
func IsClean(name string) bool {
	return Name(name) == name
}

// SplitExt splits name at its final dot. Leading dots belong to the stem,
// so ".bashrc" and "..foo" have no extension while "foo." has ".".
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	if strings.TrimLeft(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}
