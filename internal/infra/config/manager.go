package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// configHeader is written above the generated settings.
const configHeader = `# copy-assets configuration
# manifest: mapping file relative to this directory (empty = built-in mapping)
# [log] level: debug, info, warn or error
# [output] color: set to false to disable colored status lines

`

// Manager manages the project config file.
type Manager struct {
	projectRoot string // Directory holding copy-assets.toml
}

// NewManager creates a new Manager.
func NewManager(projectRoot string) *Manager {
	return &Manager{projectRoot: projectRoot}
}

// GetConfigInfo returns information about the project config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	path := filepath.Join(m.projectRoot, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig writes cfg to copy-assets.toml. An existing file is only
// replaced when overwrite is set.
func (m *Manager) InitConfig(cfg *domain.Config, overwrite bool) error {
	info := m.GetConfigInfo()
	if info.Exists && !overwrite {
		return domain.ErrConfigExists
	}

	body, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(info.Path, append([]byte(configHeader), body...), 0o600)
}
