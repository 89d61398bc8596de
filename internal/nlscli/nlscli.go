// Package nlscli implements the catgets-go command: open a message
// catalog, look up one message and print it.
package nlscli

import (
	"fmt"
	"io"

	"github.com/snapcore/go-catgets"
)

// Options holds the catgets-go command line flags.
type Options struct {
	SetID int `short:"s" long:"set" default:"1" value-name:"ID" description:"message set to look in"`

	MsgID int `short:"m" long:"message" default:"1" value-name:"ID" description:"message number to look up"`

	Fallback string `short:"f" long:"fallback" value-name:"TEXT" description:"text printed when the message cannot be retrieved"`

	UseLocale bool `short:"L" long:"locale" description:"locate the catalog via LC_ALL/LC_MESSAGES instead of LANG"`
}

// Query opens the catalog called name, writes the requested message
// (or the fallback) to w and returns the process exit code: 0 on a
// hit, 1 when the fallback was used.  A catalog that cannot be
// opened at all is an error.
func Query(w io.Writer, opts Options, name string) (int, error) {
	oflag := 0
	if opts.UseLocale {
		oflag = catgets.CatLocale
	}
	cats := catgets.NewCatalogs()
	catd, err := cats.Open(name, oflag)
	if err != nil {
		return 1, fmt.Errorf("cannot open catalog %s: %v", name, err)
	}
	defer cats.Close(catd)

	text, err := cats.Get(catd, opts.SetID, opts.MsgID, opts.Fallback)
	fmt.Fprintln(w, text)
	if err != nil {
		return 1, nil
	}
	return 0, nil
}
