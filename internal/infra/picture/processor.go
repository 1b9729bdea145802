// Package picture normalizes profile pictures: jpeg and png only, scaled down to fit a bounding box.
package picture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"slices"
	"strings"

	"userreg/config"
	domainerrors "userreg/internal/domain/errors"
	"userreg/internal/domain/service"
	"userreg/internal/errors"

	"golang.org/x/image/draw"
)

const jpegQuality = 90

const defaultMaxSourcePixels = 4096 * 4096

type processor struct {
	maxWidth        int
	maxHeight       int
	maxSourcePixels int
	extensions      []string
}

// NewProcessor builds a PictureProcessor from the picture configuration.
func NewProcessor(cfg *config.Config) service.PictureProcessor {
	p := &processor{
		maxWidth:        200,
		maxHeight:       200,
		maxSourcePixels: defaultMaxSourcePixels,
		extensions:      []string{".jpg", ".png"},
	}
	if pc := cfg.Picture; pc != nil {
		if pc.MaxWidth > 0 {
			p.maxWidth = pc.MaxWidth
		}
		if pc.MaxHeight > 0 {
			p.maxHeight = pc.MaxHeight
		}
		if pc.MaxSourcePixels > 0 {
			p.maxSourcePixels = pc.MaxSourcePixels
		}
		if len(pc.AllowedExtensions) > 0 {
			p.extensions = make([]string, 0, len(pc.AllowedExtensions))
			for _, ext := range pc.AllowedExtensions {
				p.extensions = append(p.extensions, strings.ToLower(ext))
			}
		}
	}

	return p
}

// Process decodes data, scales it to fit the bounding box and re-encodes it in its source format.
func (p *processor) Process(filename string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(p.extensions, ext) {
		return nil, domainerrors.ErrUnsupportedPicture.WithDetails("extension " + ext + " is not allowed")
	}

	// Decoders allocate the full pixel buffer from the header, so check it first.
	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedPicture, err.Error())
	}
	if header.Width <= 0 || header.Height <= 0 || header.Width > p.maxSourcePixels/header.Height {
		return nil, domainerrors.ErrUnsupportedPicture.WithDetails(
			fmt.Sprintf("picture of %dx%d exceeds %d pixels", header.Width, header.Height, p.maxSourcePixels))
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedPicture, err.Error())
	}

	scaled := p.fit(src)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, scaled)
	default:
		return nil, domainerrors.ErrUnsupportedPicture.WithDetails("content is " + format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode picture")
	}

	return buf.Bytes(), nil
}

// fit keeps the aspect ratio and never upscales.
func (p *processor) fit(src image.Image) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= p.maxWidth && height <= p.maxHeight {
		return src
	}

	// Compare p.maxWidth/width and p.maxHeight/height without floats.
	var dstW, dstH int
	if p.maxWidth*height <= p.maxHeight*width {
		dstW = p.maxWidth
		dstH = max(1, height*p.maxWidth/width)
	} else {
		dstH = p.maxHeight
		dstW = max(1, width*p.maxHeight/height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}
