package catgets

import (
	"os"
	"strings"
)

// Replaced in tests.
var osGetenv = os.Getenv

const (
	// defaultNLSPath is used when NLSPATH is not set.
	defaultNLSPath = "/usr/share/nls/%L/%N.cat;/usr/share/nls/%l.%c/%N.cat;/usr/share/nls/%l/%N.cat"
	// defaultLocale stands in for an unset or POSIX locale.
	defaultLocale = "C"
)

// localeName picks the locale used for path expansion.  With the
// CatLocale flag set, LC_ALL and then LC_MESSAGES take priority;
// LANG is the fallback either way.
func localeName(oflag int) string {
	lang := ""
	if oflag&CatLocale != 0 {
		lang = osGetenv("LC_ALL")
		if lang == "" {
			lang = osGetenv("LC_MESSAGES")
		}
	}
	if lang == "" {
		lang = osGetenv("LANG")
	}
	if lang == "" || lang == "POSIX" {
		lang = defaultLocale
	}
	return lang
}

// nlsPathIter expands the segments of an NLSPATH-style template one
// at a time.  It is single-pass: the caller consumes candidate paths
// in template order and stops at the first catalog that parses.
type nlsPathIter struct {
	rest string
	done bool

	name      string
	locale    string
	lang      string
	territory string
	codeset   string
}

// newNLSPathIter prepares expansion of template for the given locale
// and catalog name.  Locale names have the form
// language[_territory][.codeset]; a dot before the underscore belongs
// to the language and does not mark a codeset.  A locale with no
// codeset component at all is a partial specification and is
// discarded in favour of the default locale.
func newNLSPathIter(template, locale, name string) *nlsPathIter {
	sep := strings.IndexByte(locale, '_')
	dot := strings.LastIndexByte(locale, '.')
	if dot >= 0 && sep >= 0 && dot < sep {
		dot = -1
	}
	if dot < 0 {
		locale = defaultLocale
		sep = -1
	}
	it := &nlsPathIter{rest: template, name: name, locale: locale}
	langEnd := len(locale)
	if sep >= 0 && sep < langEnd {
		langEnd = sep
	}
	if dot >= 0 && dot < langEnd {
		langEnd = dot
	}
	it.lang = locale[:langEnd]
	if sep >= 0 {
		end := len(locale)
		if dot >= 0 {
			end = dot
		}
		it.territory = locale[sep+1 : end]
	}
	if dot >= 0 {
		it.codeset = locale[dot+1:]
	}
	return it
}

// next returns the next expanded candidate path.  The second result
// is false once the template is exhausted.
func (it *nlsPathIter) next() (string, bool) {
	if it.done {
		return "", false
	}
	seg := it.rest
	if i := strings.IndexByte(it.rest, ';'); i >= 0 {
		seg, it.rest = it.rest[:i], it.rest[i+1:]
	} else {
		it.done = true
	}
	return it.expand(seg), true
}

func (it *nlsPathIter) expand(seg string) string {
	var b strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(seg) {
			break
		}
		switch seg[i] {
		case 'N':
			b.WriteString(it.name)
		case 'L':
			b.WriteString(it.locale)
		case 'l':
			b.WriteString(it.lang)
		case 't':
			b.WriteString(it.territory)
		case 'c':
			b.WriteString(it.codeset)
		default:
			// Any other conversion is taken literally.
			b.WriteByte(seg[i])
		}
	}
	return b.String()
}
