package timeline

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

//go:embed data/timeline.json
var defaultDataset []byte

// DefaultSource is the Source reported by the embedded dataset.
const DefaultSource = "embedded"

// Dataset is the immutable, ordered sequence of steps a timeline is built
// from. It is fixed at load time; accessors hand out copies.
type Dataset struct {
	steps  []Step
	source string
}

// New validates steps and wraps a private copy of them in a Dataset.
// Status values are normalized through ParseStatus.
func New(steps []Step) (*Dataset, error) {
	copied := make([]Step, len(steps))
	for i, s := range steps {
		copied[i] = s.Clone()
	}
	if err := validate(copied); err != nil {
		return nil, err
	}
	return &Dataset{steps: copied}, nil
}

// Default returns the dataset embedded in the binary.
func Default() (*Dataset, error) {
	ds, err := ReadJSON(bytes.NewReader(defaultDataset))
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	ds.source = DefaultSource
	return ds, nil
}

// Load reads a dataset file, choosing the decoder by file extension.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		ds, err = ReadJSON(file)
	case ".yaml", ".yml":
		ds, err = ReadYAML(file)
	case ".csv":
		ds, err = ReadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .json, .yaml, .yml or .csv)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	ds.source = path
	return ds, nil
}

// ReadJSON decodes a JSON array of steps.
func ReadJSON(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}
	var steps []Step
	if err := sonic.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return New(steps)
}

// ReadYAML decodes a YAML sequence of steps.
func ReadYAML(r io.Reader) (*Dataset, error) {
	var steps []Step
	if err := yaml.NewDecoder(r).Decode(&steps); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return New(steps)
}

// Steps returns a copy of the steps in dataset order.
func (d *Dataset) Steps() []Step {
	steps := make([]Step, len(d.steps))
	for i, s := range d.steps {
		steps[i] = s.Clone()
	}
	return steps
}

// Len returns the number of steps.
func (d *Dataset) Len() int {
	return len(d.steps)
}

// Source returns where the dataset was loaded from: a path, "embedded",
// or empty for datasets built in memory.
func (d *Dataset) Source() string {
	return d.source
}

// Get returns the step with the given id.
func (d *Dataset) Get(id int) (Step, bool) {
	for _, s := range d.steps {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return Step{}, false
}

// WriteJSON encodes the dataset as an indented JSON array.
func (d *Dataset) WriteJSON(w io.Writer) error {
	data, err := sonic.MarshalIndent(d.steps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML encodes the dataset as a YAML sequence.
func (d *Dataset) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.steps); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
