package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"showcase/internal/models"
)

//go:embed projects.yaml
var mockProjectsYAML []byte

// Mock is an in-memory project list.
type Mock struct {
	projects []models.Project
}

// NewMock loads the bundled project list.
func NewMock() (*Mock, error) {
	return ParseMock(mockProjectsYAML)
}

// ParseMock loads a project list in the bundled YAML layout.
func ParseMock(data []byte) (*Mock, error) {
	var doc struct {
		Projects []models.Project `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse mock projects: %w", err)
	}
	return &Mock{projects: doc.Projects}, nil
}

func (m *Mock) Projects(ctx context.Context) ([]models.Project, error) {
	return m.projects, nil
}
