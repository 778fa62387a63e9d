// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator writes entry QR codes to a fixed path on disk.
type Generator struct {
	path string
}

// NewGenerator creates a generator writing to path.
func NewGenerator(path string) *Generator {
	return &Generator{path: path}
}

// Generate encodes url into a PNG at the configured path, creating parent
// directories as needed. The previous image, if any, is replaced.
func (g *Generator) Generate(url string) error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("failed to create QR directory: %w", err)
	}
	if err := qrcode.WriteFile(url, qrcode.Medium, 256, g.path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}

// Path returns where the current QR image lives, for static serving.
func (g *Generator) Path() string {
	return g.path
}
