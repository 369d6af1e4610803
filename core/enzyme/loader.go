package enzyme

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Enzymes []Enzyme `yaml:"enzymes"`
}

// ParseYAML reads a document of the form
//
//	enzymes:
//	  - {name: EcoRI, site: "G^AATTC"}
//	  - {name: BsrBI, site: CCGCTC, cut: 3}
func ParseYAML(b []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse enzyme yaml: %w", err)
	}
	return NewCatalog(doc.Enzymes)
}

// LoadYAML reads a YAML catalog from r.
func LoadYAML(r io.Reader) (*Catalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseYAML(b)
}

// LoadTSV reads whitespace-separated "name site [cut]" lines. Blank lines and
// lines starting with '#' are skipped.
func LoadTSV(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Enzyme
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 || len(f) > 3 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		e := Enzyme{Name: f[0], Recognition: strings.ToUpper(f[1])}
		if len(f) == 3 {
			cut, err := strconv.Atoi(f[2])
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad cut: %v", path, ln, err)
			}
			e.CutIndex = &cut
		}
		list = append(list, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	c, err := NewCatalog(list)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadFile picks the loader by extension: .yaml/.yml as YAML, anything else
// as TSV.
func LoadFile(path string) (*Catalog, error) {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = fh.Close() }()
		c, err := LoadYAML(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return c, nil
	default:
		return LoadTSV(path)
	}
}
