package catgets

import (
	"bytes"
	"os"
	"sort"
	"strings"
)

// message is a single catalog entry.
type message struct {
	setID int
	msgID int
	text  string
}

// catalog is the in-memory form of one parsed catalog file.  Its
// message table is sorted by (setID, msgID) once at parse time so
// lookups can binary search it.
type catalog struct {
	open bool
	msgs []message
}

// Whitespace trimmed from the ends of each logical line.
const lineSpace = " \t\f\v\r"

// parseCatalog reads the message catalog file at path.
//
// The format is one message per logical line: a set number, a
// delimiter byte, a message number, a delimiter byte and the message
// text, which may use escape sequences.  A physical line ending in a
// backslash continues on the next one.  Lines that do not start with
// a digit are ignored.
//
// Failure to open or read the file is reported to the caller, which
// treats it as "try the next candidate path"; it is never fatal.
func parseCatalog(path string) (*catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := openMapping(f)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	cat := &catalog{}
	logical := ""
	for rest := m.data; len(rest) > 0 || logical != ""; {
		var line []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, nil
		}
		logical = strings.Trim(logical+string(line), lineSpace)
		if strings.HasSuffix(logical, "\\") {
			logical = logical[:len(logical)-1]
			if len(rest) > 0 {
				continue
			}
			// A continuation on the last line has nothing left
			// to join; take it as it stands.
		}
		cat.addLine(logical)
		logical = ""
	}

	sort.SliceStable(cat.msgs, func(i, j int) bool {
		a, b := &cat.msgs[i], &cat.msgs[j]
		if a.setID != b.setID {
			return a.setID < b.setID
		}
		return a.msgID < b.msgID
	})
	return cat, nil
}

// addLine parses one logical line and appends its message, if any.
// Duplicate (set, msg) keys are not collapsed here; the lookup side
// resolves them.
func (c *catalog) addLine(line string) {
	if line == "" || !isDigit(line[0]) {
		// Blank lines, comments and directives are all ignored.
		return
	}
	i := 0
	setID := 0
	for i < len(line) && isDigit(line[i]) {
		setID = setID*10 + int(line[i]-'0')
		i++
	}
	i++ // exactly one delimiter byte
	msgID := 0
	for i < len(line) && isDigit(line[i]) {
		msgID = msgID*10 + int(line[i]-'0')
		i++
	}
	i++
	text := ""
	if i < len(line) {
		text = transformValue(line[i:])
	}
	c.msgs = append(c.msgs, message{setID: setID, msgID: msgID, text: text})
}

// lookup binary-searches the sorted message table.  If the catalog
// file defined the same (set, msg) key more than once, the last
// definition in file order wins.
func (c *catalog) lookup(setID, msgID int) (string, bool) {
	n := len(c.msgs)
	idx := sort.Search(n, func(i int) bool {
		m := &c.msgs[i]
		if m.setID != setID {
			return m.setID > setID
		}
		return m.msgID >= msgID
	})
	if idx == n || c.msgs[idx].setID != setID || c.msgs[idx].msgID != msgID {
		return "", false
	}
	for idx+1 < n && c.msgs[idx+1].setID == setID && c.msgs[idx+1].msgID == msgID {
		idx++
	}
	return c.msgs[idx].text, true
}
