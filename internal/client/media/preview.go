// Package media turns image files into the opaque markup blobs stored on
// profiles, events and reports.
package media

import (
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/common"
	"github.com/gabriel-vasile/mimetype"
)

// Alt texts for the generated markup.
const (
	AltAvatar      = "Avatar"
	AltEventPhoto  = "Event photo"
	AltReportPhoto = "Report photo"
)

// Preview reads the file at path and returns an <img> element with the
// content inlined as a data URL. The type is sniffed from the content, not
// the extension; non-images are rejected with common.ErrNotAnImage.
func Preview(path, alt string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return PreviewBytes(data, alt)
}

// PreviewBytes is Preview for content already in memory.
func PreviewBytes(data []byte, alt string) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", common.ErrNotAnImage, mt.String())
	}

	mime, _, _ := strings.Cut(mt.String(), ";")
	src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(`<img src="%s" alt="%s">`, src, html.EscapeString(alt)), nil
}

// Gallery previews up to models.MaxReportPhotos files and concatenates the
// results. Extra paths are ignored; any unreadable or non-image file fails
// the whole gallery so a submission never carries a partial set.
func Gallery(paths []string, alt string) (string, error) {
	if len(paths) > models.MaxReportPhotos {
		paths = paths[:models.MaxReportPhotos]
	}

	var b strings.Builder
	for _, p := range paths {
		img, err := Preview(p, alt)
		if err != nil {
			return "", fmt.Errorf("%s: %w", p, err)
		}
		b.WriteString(img)
	}
	return b.String(), nil
}

// Count returns how many <img> elements a blob holds.
func Count(blob string) int {
	return strings.Count(blob, "<img ")
}
