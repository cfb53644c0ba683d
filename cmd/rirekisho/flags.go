package main

import (
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// generateFlags holds every flag of the command. Flags override the
// corresponding config file fields.
type generateFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool

	origin string
	dir    string
	output string

	templateDir      string
	builtinTemplates bool

	photo      string
	postalCode string
	address    string
	phone      string
	motivation string
	preference string

	timeout time.Duration
}

func parseFlags(args []string) (*generateFlags, error) {
	fs := flag.NewFlagSet("rirekisho", flag.ContinueOnError)
	fs.Usage = func() { printUsage(os.Stderr) }

	f := &generateFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.StringVar(&f.origin, "origin", "", "site origin to fetch content from (e.g. https://example.com)")
	fs.StringVar(&f.dir, "dir", "", "local content checkout instead of an origin")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: current directory)")

	fs.StringVar(&f.templateDir, "templates", "", "directory with template overrides")
	fs.BoolVar(&f.builtinTemplates, "builtin-templates", false, "use the embedded templates instead of fetching")

	fs.StringVar(&f.photo, "photo", "", "ID photo file (JPEG or PNG, max 8MB)")
	fs.StringVar(&f.postalCode, "postal-code", "", "postal code")
	fs.StringVar(&f.address, "address", "", "current address")
	fs.StringVar(&f.phone, "phone", "", "phone number")
	fs.StringVar(&f.motivation, "motivation", "", "志望動機 text")
	fs.StringVar(&f.preference, "preference", "", "本人希望記入欄 text")

	fs.DurationVar(&f.timeout, "timeout", 60*time.Second, "overall fetch and build timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return f, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `rirekisho - generate 履歴書 and 職務経歴書 from portfolio site content

Usage:
  rirekisho --origin https://example.com [flags]
  rirekisho --dir ./site/static [flags]

The content source must serve the site's /data and /templates trees.
Generated documents are written as 履歴書.html and 職務経歴書.html.

Flags:
  -c, --config string       config file name or path
      --origin string       site origin to fetch content from
      --dir string          local content checkout instead of an origin
  -o, --output string       output directory (default: current directory)
      --templates string    directory with template overrides
      --builtin-templates   use the embedded templates instead of fetching
      --photo string        ID photo file (JPEG or PNG, max 8MB)
      --postal-code string  postal code
      --address string      current address
      --phone string        phone number
      --motivation string   志望動機 text
      --preference string   本人希望記入欄 text
      --timeout duration    overall fetch and build timeout (default 1m0s)
  -q, --quiet               only show errors
  -v, --verbose             show detailed progress
      --version             print version and exit
`)
}
