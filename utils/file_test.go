package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImageFilename(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "product_1700000000123.png", ImageFilename("product", "shirt.png", at))
	assert.Equal(t, "product_1700000000123.jpeg", ImageFilename("product", "a.b.jpeg", at))
	assert.Equal(t, "product_1700000000123", ImageFilename("product", "noext", at))
}

func TestPublicImageURL(t *testing.T) {
	assert.Equal(t, "http://localhost:4000/images/x.png", PublicImageURL("http://localhost:4000", "x.png"))
	assert.Equal(t, "https://cdn.test/images/x.png", PublicImageURL("https://cdn.test/", "x.png"))
}
