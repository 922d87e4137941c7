// Package export renders already-loaded domain records into downloadable
// documents: per-receipt PDFs, tabulated receipt and expense reports, and
// spreadsheet exports. It never touches the store.
package export

import (
	"bytes"
	"errors"

	"society-manager/internal/util"
)

// ErrExportUnavailable means the rendering backend failed; the caller aborts
// the download with a user-visible message and no partial file is written.
var ErrExportUnavailable = errors.New("export unavailable")

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// imageType sniffs the encoding of a signature image. fpdf needs the type
// name up front when registering a reader.
func imageType(img []byte) string {
	switch {
	case bytes.HasPrefix(img, pngMagic):
		return "PNG"
	case bytes.HasPrefix(img, jpegMagic):
		return "JPG"
	default:
		return ""
	}
}

// money renders paise for document cells.
func money(paise int64) string {
	return util.FormatPaise(paise)
}
