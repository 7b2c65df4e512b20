package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
)

const (
	AvatarSize        = 256
	AvatarContentType = "image/webp"
	MaxUploadBytes    = 5 << 20

	webpQuality = 80
)

var (
	ErrInvalidImage  = httperr.Validation("invalid_image", "Imagen inválida o formato no soportado.")
	ErrImageTooLarge = httperr.Validation("image_too_large", "La imagen supera los 5 MB.")
)

// ProcessAvatar crops the upload to a centred square, scales it to
// AvatarSize and re-encodes it as WebP. JPEG, PNG and WebP are accepted.
func ProcessAvatar(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	if side == 0 {
		return nil, ErrInvalidImage
	}
	square := imaging.CropCenter(img, side, side)

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), square, square.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func AvatarKey(userID uint) string {
	return fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())
}
