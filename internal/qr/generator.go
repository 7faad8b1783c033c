package qr

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fabclean/laundry-api/internal/models"
)

// Payload is the order snapshot encoded into the QR image. It is written
// once at creation time and never regenerated on later updates.
type Payload struct {
	OrderID             string   `json:"orderId"`
	CustomerName        string   `json:"customerName"`
	CustomerEmail       string   `json:"customerEmail"`
	CustomerPhone       string   `json:"customerPhone"`
	Service             []string `json:"service"`
	PickupDate          string   `json:"pickupDate"`
	SpecialInstructions string   `json:"specialInstructions"`
	Total               float64  `json:"total"`
	CreatedAt           string   `json:"createdAt"`
}

type Generator struct {
	dir      string
	size     int
	webp     bool
	webpSize int

	uploader Uploader
	log      *logrus.Logger
}

type Option func(*Generator)

// WithWebP enables the scaled WebP variant next to the PNG artifact.
func WithWebP(size int) Option {
	return func(g *Generator) {
		g.webp = true
		g.webpSize = size
	}
}

// WithUploader mirrors every artifact to object storage.
func WithUploader(u Uploader) Option {
	return func(g *Generator) {
		g.uploader = u
	}
}

func NewGenerator(dir string, size int, log *logrus.Logger, opts ...Option) *Generator {
	g := &Generator{
		dir:  dir,
		size: size,
		log:  log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Dir() string {
	return g.dir
}

// Generate renders and stores the QR artifact for an order and returns the
// PNG filename. The order is already committed when this runs; a failure
// here surfaces to the caller but does not roll the order back.
func (g *Generator) Generate(ctx context.Context, o *models.Order) (string, error) {
	payload := Payload{
		OrderID:             o.ID,
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.CustomerEmail,
		CustomerPhone:       o.CustomerPhone,
		Service:             o.ServiceNames(),
		PickupDate:          o.PickupDate,
		SpecialInstructions: o.SpecialInstructions,
		Total:               o.Total,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339),
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode qr payload: %w", err)
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create qr dir: %w", err)
	}

	code, err := qrcode.New(string(content), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("build qr code: %w", err)
	}

	png, err := code.PNG(g.size)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	filename := o.ID + ".png"
	if err := os.WriteFile(filepath.Join(g.dir, filename), png, 0o644); err != nil {
		return "", fmt.Errorf("write qr png: %w", err)
	}

	if err := g.upload(ctx, filename, "image/png", png); err != nil {
		return "", err
	}

	if g.webp {
		if err := g.writeWebP(ctx, o.ID, code.Image(g.size)); err != nil {
			// the PNG is the canonical artifact, a missing variant is logged only
			g.log.WithError(err).WithField("order_id", o.ID).Warn("qr webp variant failed")
		}
	}

	return filename, nil
}

func (g *Generator) writeWebP(ctx context.Context, orderID string, img image.Image) error {
	scaled := scale(img, g.webpSize)

	data, err := encodeWebP(scaled)
	if err != nil {
		return err
	}

	filename := orderID + ".webp"
	if err := os.WriteFile(filepath.Join(g.dir, filename), data, 0o644); err != nil {
		return err
	}

	return g.upload(ctx, filename, "image/webp", data)
}

func (g *Generator) upload(ctx context.Context, filename, contentType string, data []byte) error {
	if g.uploader == nil {
		return nil
	}
	if err := g.uploader.Upload(ctx, filename, contentType, data); err != nil {
		return fmt.Errorf("upload %s: %w", filename, err)
	}
	return nil
}
