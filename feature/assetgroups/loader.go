package assetgroups

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/media"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/history"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the assetgroups feature.
func NewFeature(sheetsClient sheets.Client, adsClient ads.Client, fetcher media.Fetcher, store *history.Store, logger *zap.Logger) *Feature {
	svc := NewService(sheetsClient, adsClient, fetcher, store, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return flowName
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
