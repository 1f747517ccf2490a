// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging probes pixel dimensions of uploaded images without
// fully decoding them. Dimensions are stored on the media row so the
// frontend can reserve layout space before the image loads.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

// Dimensions returns the width and height in pixels of an encoded image.
// SVG and other non-raster uploads are not decodable here; callers treat
// the error as "dimensions unknown", not as a failed upload.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
