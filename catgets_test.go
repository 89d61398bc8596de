package catgets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenEmptyName(t *testing.T) {
	cs := NewCatalogs()
	catd, err := cs.Open("", 0)
	if catd != NoCat {
		t.Fatalf("expected NoCat, got %d", catd)
	}
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestOpenDirectPath(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()
	path := writeCatalog(t, dir, "prog.cat", "1 1 Hello\n2 3 World\n")

	cs := NewCatalogs()
	catd, err := cs.Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	text, err := cs.Get(catd, 1, 1, "default")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "Hello", text)

	text, err = cs.Get(catd, 2, 3, "default")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "World", text)

	text, err = cs.Get(catd, 9, 9, "default")
	if !errors.Is(err, ErrNoMessage) {
		t.Fatalf("expected ErrNoMessage, got %v", err)
	}
	assert_equal(t, "default", text)

	if err := cs.Close(catd); err != nil {
		t.Fatal(err)
	}
	text, err = cs.Get(catd, 1, 1, "default")
	if !errors.Is(err, ErrBadDescriptor) {
		t.Fatalf("expected ErrBadDescriptor, got %v", err)
	}
	assert_equal(t, "default", text)
}

func TestOpenDirectPathMissing(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()

	cs := NewCatalogs()
	catd, err := cs.Open(filepath.Join(dir, "nope.cat"), 0)
	if catd != NoCat || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected (NoCat, ErrNotFound), got (%d, %v)", catd, err)
	}
	// The error keeps the cause for a name opened as a direct path.
	if !strings.Contains(err.Error(), "nope.cat") {
		t.Fatalf("error %q does not name the failing path", err)
	}
}

func TestOpenViaNLSPath(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()
	writeCatalog(t, dir, "prog.de_DE.UTF-8.cat", "1 1 Hallo\n")

	restore := mockGetenv(map[string]string{
		"NLSPATH": filepath.Join(dir, "%N.%L.cat"),
		"LANG":    "de_DE.UTF-8",
	})
	defer restore()

	cs := NewCatalogs()
	catd, err := cs.Open("prog", 0)
	if err != nil {
		t.Fatal(err)
	}
	text, err := cs.Get(catd, 1, 1, "default")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "Hallo", text)
}

func TestOpenTriesCandidatesInOrder(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()
	// Only the second candidate exists.
	writeCatalog(t, dir, "prog.de.cat", "1 1 Hallo\n")

	restore := mockGetenv(map[string]string{
		"NLSPATH": filepath.Join(dir, "%N.%L.cat") + ";" + filepath.Join(dir, "%N.%l.cat"),
		"LANG":    "de_DE.UTF-8",
	})
	defer restore()

	cs := NewCatalogs()
	catd, err := cs.Open("prog", 0)
	if err != nil {
		t.Fatal(err)
	}
	text, err := cs.Get(catd, 1, 1, "default")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "Hallo", text)
}

func TestOpenNoCandidateFound(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()

	restore := mockGetenv(map[string]string{
		"NLSPATH": filepath.Join(dir, "%N.%L.cat"),
		"LANG":    "de_DE.UTF-8",
	})
	defer restore()

	cs := NewCatalogs()
	catd, err := cs.Open("prog", 0)
	if catd != NoCat || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected (NoCat, ErrNotFound), got (%d, %v)", catd, err)
	}
}

func TestOpenLocaleCategory(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()
	writeCatalog(t, dir, "prog.fr_FR.UTF-8.cat", "1 1 Bonjour\n")
	writeCatalog(t, dir, "prog.de_DE.UTF-8.cat", "1 1 Hallo\n")

	restore := mockGetenv(map[string]string{
		"NLSPATH":     filepath.Join(dir, "%N.%L.cat"),
		"LC_MESSAGES": "fr_FR.UTF-8",
		"LANG":        "de_DE.UTF-8",
	})
	defer restore()

	cs := NewCatalogs()

	// Without the flag only LANG counts.
	catd, err := cs.Open("prog", 0)
	if err != nil {
		t.Fatal(err)
	}
	text, _ := cs.Get(catd, 1, 1, "default")
	assert_equal(t, "Hallo", text)

	// With it, LC_MESSAGES wins.
	catd, err = cs.Open("prog", CatLocale)
	if err != nil {
		t.Fatal(err)
	}
	text, _ = cs.Get(catd, 1, 1, "default")
	assert_equal(t, "Bonjour", text)
}

func TestDescriptorReuseAfterClose(t *testing.T) {
	dir, rm := testDir(t)
	defer rm()
	pathA := writeCatalog(t, dir, "a.cat", "1 1 from A\n")
	pathB := writeCatalog(t, dir, "b.cat", "1 1 from B\n")

	cs := NewCatalogs()
	catdA, err := cs.Open(pathA, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := cs.Close(catdA); err != nil {
		t.Fatal(err)
	}

	catdB, err := cs.Open(pathB, 0)
	if err != nil {
		t.Fatal(err)
	}
	if catdB != catdA {
		t.Fatalf("expected descriptor %d to be reused, got %d", catdA, catdB)
	}
	text, err := cs.Get(catdB, 1, 1, "default")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "from B", text)
}

func TestCloseInvalidDescriptor(t *testing.T) {
	cs := NewCatalogs()
	if err := cs.Close(0); !errors.Is(err, ErrBadDescriptor) {
		t.Fatalf("expected ErrBadDescriptor, got %v", err)
	}
	if err := cs.Close(NoCat); !errors.Is(err, ErrBadDescriptor) {
		t.Fatalf("expected ErrBadDescriptor, got %v", err)
	}

	dir, rm := testDir(t)
	defer rm()
	path := writeCatalog(t, dir, "a.cat", "1 1 x\n")
	catd, err := cs.Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := cs.Close(catd); err != nil {
		t.Fatal(err)
	}
	if err := cs.Close(catd); !errors.Is(err, ErrBadDescriptor) {
		t.Fatalf("closing twice: expected ErrBadDescriptor, got %v", err)
	}
}
