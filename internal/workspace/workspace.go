// Package workspace persists uploaded datasets between CLI invocations. Each
// dataset lives in its own directory with a normalized CSV copy and a yaml
// manifest; the in-memory store stays the engine-facing registry.
package workspace

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/chartloom-cli/internal/store"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
	"github.com/KaramelBytes/chartloom-cli/internal/utils"
)

const (
	manifestFileName = "manifest.yaml"
	dataFileName     = "data.csv"
)

// Manifest describes one persisted dataset.
type Manifest struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Source    string    `yaml:"source"`
	Rows      int       `yaml:"rows"`
	Columns   []string  `yaml:"columns"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Workspace is a directory of dataset subdirectories.
type Workspace struct {
	root string
}

// New returns a workspace rooted at dir.
func New(dir string) *Workspace {
	return &Workspace{root: dir}
}

// Root returns the workspace directory path.
func (w *Workspace) Root() string { return w.root }

// SaveDataset writes t under name, replacing any previous dataset of the
// same name (last write wins, matching the in-memory store).
func (w *Workspace) SaveDataset(name, source string, t *table.Table) (*Manifest, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	dir := filepath.Join(w.root, name)
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure dataset dir: %w", err)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.RowCount(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, dataFileName), buf.Bytes()); err != nil {
		return nil, err
	}

	m := &Manifest{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		Rows:      t.RowCount(),
		Columns:   t.ColumnNames(),
		CreatedAt: time.Now(),
	}
	mb, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, manifestFileName), mb); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadDataset reads the named dataset back into a table. A missing dataset
// is reported with the same error the in-memory store uses.
func (w *Workspace) LoadDataset(name string) (*table.Table, *Manifest, error) {
	if err := validName(name); err != nil {
		return nil, nil, err
	}
	dir := filepath.Join(w.root, name)
	mb, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &store.NotFoundError{Name: name}
		}
		return nil, nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(mb, &m); err != nil {
		return nil, nil, fmt.Errorf("parse manifest: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, dataFileName))
	if err != nil {
		return nil, nil, fmt.Errorf("read dataset: %w", err)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataset %q has no header", name)
	}
	t, err := table.New(records[0], records[1:])
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild table: %w", err)
	}
	return t, &m, nil
}

// List returns manifests of all datasets in the workspace, sorted by name.
func (w *Workspace) List() ([]Manifest, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var out []Manifest
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		mb, err := os.ReadFile(filepath.Join(w.root, e.Name(), manifestFileName))
		if err != nil {
			continue // not a dataset dir
		}
		var m Manifest
		if err := yaml.Unmarshal(mb, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func validName(name string) error {
	if name == "" {
		return errors.New("dataset name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid dataset name %q", name)
	}
	return nil
}
