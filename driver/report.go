// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys of the timing report. The argument is a preformatted number,
// so the printer never applies locale digit grouping or decimal commas.
const (
	msgSerial   = "Serial time: %s seconds\n"
	msgParallel = "Parallel time: %s seconds\n"
)

// DefaultLang is the report language when --lang is not given.
const DefaultLang = "tr"

// supportedLangs is ordered by preference; the first entry is the fallback.
var supportedLangs = []language.Tag{language.Turkish, language.English}

var reportCatalog = newReportCatalog()

func newReportCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(b.SetString(language.Turkish, msgSerial, "Seri zaman: %s saniye\n"))
	must(b.SetString(language.Turkish, msgParallel, "Paralel zaman: %s saniye\n"))
	must(b.SetString(language.English, msgSerial, msgSerial))
	must(b.SetString(language.English, msgParallel, msgParallel))

	return b
}

// parseLang resolves a --lang value to one of supportedLangs.
func parseLang(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: --lang %q: %w", ErrUsage, s, err)
	}
	_, idx, conf := language.NewMatcher(supportedLangs).Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w: --lang %q: supported: tr, en", ErrUsage, s)
	}

	return supportedLangs[idx], nil
}

// Report holds the measured wall-clock durations of one run.
type Report struct {
	Serial   time.Duration
	Parallel time.Duration
}

// seconds formats d as seconds with six decimals.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

// Print writes the two timing lines in the language of tag.
func (r Report) Print(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag, message.Catalog(reportCatalog))
	if _, err := p.Fprintf(w, msgSerial, seconds(r.Serial)); err != nil {
		return err
	}
	_, err := p.Fprintf(w, msgParallel, seconds(r.Parallel))

	return err
}
