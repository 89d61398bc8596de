// Implements the POSIX catopen/catgets/catclose message catalog API
// in pure Go, reading the text line format directly.

package catgets

import (
	"fmt"
	"strings"
)

// Catd is a message catalog descriptor returned by Open.
type Catd int

// NoCat is the descriptor value returned by a failed Open.
const NoCat Catd = -1

// CatLocale is the Open oflag selecting the LC_MESSAGES locale
// category (the NL_CAT_LOCALE of catopen).  With the flag clear only
// LANG is consulted.
const CatLocale = 1

// pathMarks make a catalog name a filesystem path, opened directly
// without NLSPATH expansion.
const pathMarks = `/\:`

// Open opens the message catalog called name and returns its
// descriptor.  A name containing a path separator is used as a file
// path as is; any other name is located by expanding the NLSPATH
// template (or a built-in default) against the locale from the
// environment, trying each candidate path in order.
func (cs *Catalogs) Open(name string, oflag int) (Catd, error) {
	if name == "" {
		return NoCat, ErrEmptyName
	}
	if strings.ContainsAny(name, pathMarks) {
		cat, err := parseCatalog(name)
		if err != nil {
			return NoCat, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return cs.install(cat), nil
	}
	template := osGetenv("NLSPATH")
	if template == "" {
		template = defaultNLSPath
	}
	it := newNLSPathIter(template, localeName(oflag), name)
	for {
		path, ok := it.next()
		if !ok {
			return NoCat, ErrNotFound
		}
		if cat, err := parseCatalog(path); err == nil {
			return cs.install(cat), nil
		}
	}
}

// Get returns the message under setID and msgID in the catalog open
// as catd.  The returned string is always usable: on any failure it
// is fallback, and the error tells the failure kind apart
// (ErrBadDescriptor or ErrNoMessage).  On a hit the error is nil.
func (cs *Catalogs) Get(catd Catd, setID, msgID int, fallback string) (string, error) {
	cat, ok := cs.lookup(catd)
	if !ok {
		return fallback, ErrBadDescriptor
	}
	text, ok := cat.lookup(setID, msgID)
	if !ok {
		return fallback, ErrNoMessage
	}
	return text, nil
}

// Close closes the catalog open as catd and releases its message
// table.  The descriptor becomes available for reuse by a later
// Open.
func (cs *Catalogs) Close(catd Catd) error {
	cat, ok := cs.lookup(catd)
	if !ok {
		return ErrBadDescriptor
	}
	cat.open = false
	cat.msgs = nil
	return nil
}
