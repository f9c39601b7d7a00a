package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"shopfloor/domain"
	"shopfloor/domain/directory"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed shopfloor.yaml
var defaultDocument []byte

// Document is the seed data of a process: the work orders and the read-only directories.
type Document struct {
	Sites      []directory.Site   `yaml:"sites"`
	Teams      []directory.Team   `yaml:"teams"`
	Employees  []directory.Person `yaml:"employees"`
	WorkOrders []domain.WorkOrder `yaml:"workOrders"`
}

func (d *Document) Directory() *directory.Directory {
	return directory.NewDirectory(d.Employees, d.Teams, d.Sites)
}

func Parse(data []byte) (*Document, error) {
	doc := Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, o := range doc.WorkOrders {
		if seen[o.ID] {
			return nil, fmt.Errorf("duplicated work order '%s': %w", o.ID, domain.ErrWorkOrderExisted)
		}
		seen[o.ID] = true
		if o.Status != "" && !o.Status.Valid() {
			return nil, fmt.Errorf("work order '%s': %w '%s'", o.ID, domain.ErrUnknownStatus, o.Status)
		}
	}
	return &doc, nil
}

func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads the fixture file at path, the embedded document is used when path is empty.
func Load(path string) (*Document, error) {
	if path == "" {
		logrus.Info("loading embedded fixtures")
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logrus.WithField("path", path).Info("loading fixtures")
	return Parse(data)
}
