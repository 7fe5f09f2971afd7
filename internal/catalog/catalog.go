// Package catalog keeps the set of compiled components available to the CLI:
// the built-ins plus any declarations loaded from component files.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/alexisbeaulieu97/variantkit/internal/components"
	"github.com/alexisbeaulieu97/variantkit/internal/config"
	"github.com/alexisbeaulieu97/variantkit/internal/logger"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// AppDirName is the directory created under the XDG config home.
const AppDirName = "variantkit"

// BuiltinSource is the Source recorded for compiled-in components.
const BuiltinSource = "builtin"

// Component is one compiled entry in the catalog.
type Component struct {
	Name        string
	Description string
	Source      string
	Specs       resolver.Specs
}

// Catalog is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	components map[string]Component
	logger     *logger.Logger
}

// Options configures Load.
type Options struct {
	// Dirs are searched in order. Each must exist.
	Dirs []string
	// IncludeDefault also searches DefaultDir when it exists.
	IncludeDefault bool
	Logger         *logger.Logger
}

// DefaultDir returns $XDG_CONFIG_HOME/variantkit/components.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "components")
}

// New returns an empty catalog.
func New(log *logger.Logger) *Catalog {
	return &Catalog{
		components: make(map[string]Component),
		logger:     log,
	}
}

// Load builds a catalog holding the built-ins and every component file found
// in the configured directories.
func Load(opts Options) (*Catalog, error) {
	c := New(opts.Logger)
	if err := c.RegisterBuiltins(); err != nil {
		return nil, err
	}

	if opts.IncludeDefault {
		dir := DefaultDir()
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if _, err := c.LoadDir(dir); err != nil {
				return nil, err
			}
		} else {
			c.logger.WithFields(map[string]any{"dir": dir}).Debug("default component directory not present")
		}
	}

	for _, dir := range opts.Dirs {
		if _, err := c.LoadDir(dir); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RegisterBuiltins compiles and registers the compiled-in components.
func (c *Catalog) RegisterBuiltins() error {
	for _, decl := range components.Builtins() {
		if err := c.Register(decl, "", BuiltinSource); err != nil {
			return err
		}
	}
	return nil
}

// Register compiles decl and adds it under its name. Names are unique
// without regard to case.
func (c *Catalog) Register(decl resolver.Declaration, description, source string) error {
	specs, err := resolver.Compile(decl)
	if err != nil {
		return fmt.Errorf("compile %s: %w", decl.Name, err)
	}

	key := strings.ToLower(decl.Name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.components[key]; ok {
		return apperrors.NewValidationError("component_name",
			fmt.Sprintf("component %q from %s is already registered from %s", decl.Name, source, existing.Source), nil)
	}

	c.components[key] = Component{
		Name:        decl.Name,
		Description: description,
		Source:      source,
		Specs:       specs,
	}
	return nil
}

// LoadFile parses, validates and registers a single component file.
func (c *Catalog) LoadFile(path string) error {
	file, err := config.ParseFile(path)
	if err != nil {
		return err
	}
	decl, err := file.Declaration()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Register(decl, file.Description, path); err != nil {
		return err
	}
	c.logger.WithFields(map[string]any{"component": decl.Name, "path": path}).Debug("loaded component file")
	return nil
}

// LoadDir registers every component file directly inside dir and returns the
// number loaded. Files with other extensions are skipped.
func (c *Catalog) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read component directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			continue
		}
		if !config.IsComponentFile(path) {
			c.logger.WithFields(map[string]any{"path": path}).Warn("skipping non-component file")
			continue
		}
		if err := c.LoadFile(path); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// Get looks a component up by name, ignoring case.
func (c *Catalog) Get(name string) (Component, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if comp, ok := c.components[strings.ToLower(name)]; ok {
		return comp, nil
	}
	return Component{}, apperrors.NewLookupError(name, c.namesLocked())
}

// List returns every component sorted by name.
func (c *Catalog) List() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Component, 0, len(c.components))
	for _, comp := range c.components {
		result = append(result, comp)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result
}

// Names returns the registered component names sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.namesLocked()
}

func (c *Catalog) namesLocked() []string {
	names := make([]string, 0, len(c.components))
	for _, comp := range c.components {
		names = append(names, comp.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// Len reports how many components are registered.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.components)
}
