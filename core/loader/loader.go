package loader

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is the interface every loadable module implements.
type Feature interface {
	// Name returns the feature's identifier, used for logging and routing.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the given router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
	log      *zap.Logger
}

// NewManager creates a feature manager.
func NewManager(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature onto the router. Loading stops at the
// first failure so the server never starts with a partially wired feature.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.log.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}

		if err := f.Load(app); err != nil {
			m.log.Error("Feature failed to load", zap.String("feature", f.Name()), zap.Error(err))
			return err
		}

		m.log.Info("Feature loaded", zap.String("feature", f.Name()))
	}

	return nil
}
