package routes

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// newMultipart writes a small PNG under the "avatar" field and returns the
// form content type.
func newMultipart(t *testing.T, body *bytes.Buffer) string {
	t.Helper()

	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 32, 32))))
	require.NoError(t, w.Close())

	return w.FormDataContentType()
}
