package util

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// ThumbnailMaxSize 头像缩略图的边界框边长
const ThumbnailMaxSize = 300

// ThumbnailImage 将图片等比缩放到 maxSize x maxSize 边界框内。
// 图片本身已在边界框内时返回 resized=false，原数据不动。
func ThumbnailImage(r io.Reader, maxSize int) (data []byte, resized bool, err error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, false, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return nil, false, nil
	}

	// 等比缩放
	newW, newH := maxSize, maxSize
	if w > h {
		newH = h * maxSize / w
	} else {
		newW = w * maxSize / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
