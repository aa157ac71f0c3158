// Package sector builds playable sectors: the tile grid, the entity
// factories and the kind-indexed stat catalog they read from.
package sector

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ProcessSpec is the stat block of one process kind.
type ProcessSpec struct {
	Health       int `yaml:"health"`
	Attack       int `yaml:"attack"`
	Defense      int `yaml:"defense"`
	Speed        int `yaml:"speed"`
	ActionPoints int `yaml:"actionPoints"`
}

// MalwareSpec is the stat block and behavior descriptor of one malware kind.
type MalwareSpec struct {
	Health          int  `yaml:"health"`
	Attack          int  `yaml:"attack"`
	Defense         int  `yaml:"defense"`
	Speed           int  `yaml:"speed"`
	AggroRange      int  `yaml:"aggroRange"`
	AbilityCooldown int  `yaml:"abilityCooldown"`
	Mobile          bool `yaml:"mobile"`
	Stealth         bool `yaml:"stealth"` // stealth kinds start dormant
}

// Catalog is the designer-authored data table entities are built from.
type Catalog struct {
	Processes       map[string]ProcessSpec       `yaml:"processes"`
	Malware         map[string]MalwareSpec       `yaml:"malware"`
	ReplicationCaps map[domain.Difficulty]int    `yaml:"replicationCaps"`
}

// LoadCatalog parses the embedded default catalog.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalogFile parses a catalog override from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Processes) == 0 {
		return nil, fmt.Errorf("catalog defines no process kinds")
	}
	if len(c.Malware) == 0 {
		return nil, fmt.Errorf("catalog defines no malware kinds")
	}
	return &c, nil
}

// MustCatalog returns the embedded catalog or panics. The embedded file is
// validated by tests, so a failure here is a build defect.
func MustCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic("sector: embedded catalog invalid: " + err.Error())
	}
	return c
}
