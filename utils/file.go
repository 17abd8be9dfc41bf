package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageFieldName is the multipart field the upload endpoint reads.
const ImageFieldName = "product"

// ImageFilename derives the stored name: <field>_<unix millis><original ext>.
func ImageFilename(field, originalName string, at time.Time) string {
	return fmt.Sprintf("%s_%d%s", field, at.UnixMilli(), filepath.Ext(originalName))
}

func PublicImageURL(baseURL, filename string) string {
	return strings.TrimRight(baseURL, "/") + "/images/" + filename
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, os.ModePerm)
}
