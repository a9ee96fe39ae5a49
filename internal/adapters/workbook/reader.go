// Package workbook reads roster workbooks exported as YAML.
//
// A workbook has one list per sheet:
//
//	missions:
//	  - project_id: PRJ001
//	    location: Bangalore
//	    start_date: 2026-02-01
//	pilots:
//	  - name: Arjun
//	drones:
//	  - drone_id: D001
//
// Every value is kept as its literal scalar text, so dates and numeric IDs
// come through exactly as written.
package workbook

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/skylark/internal/ports/secondary"
)

// document is the top-level layout of a workbook file.
type document struct {
	Missions []map[string]yaml.Node `yaml:"missions"`
	Pilots   []map[string]yaml.Node `yaml:"pilots"`
	Drones   []map[string]yaml.Node `yaml:"drones"`
}

// Reader implements secondary.WorkbookReader for YAML files.
type Reader struct{}

// NewReader creates a new YAML workbook reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the workbook at path.
func (r *Reader) Read(ctx context.Context, path string) (*secondary.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	return Parse(data)
}

// Parse decodes workbook YAML.
func Parse(data []byte) (*secondary.Workbook, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}

	missions, err := toRows("missions", doc.Missions)
	if err != nil {
		return nil, err
	}
	pilots, err := toRows("pilots", doc.Pilots)
	if err != nil {
		return nil, err
	}
	drones, err := toRows("drones", doc.Drones)
	if err != nil {
		return nil, err
	}

	return &secondary.Workbook{Missions: missions, Pilots: pilots, Drones: drones}, nil
}

func toRows(sheet string, entries []map[string]yaml.Node) ([]secondary.Row, error) {
	rows := make([]secondary.Row, 0, len(entries))
	for i, entry := range entries {
		row := make(secondary.Row, len(entry))
		for key, node := range entry {
			switch node.Kind {
			case yaml.ScalarNode:
				if node.ShortTag() == "!!null" {
					row[columnName(key)] = ""
					continue
				}
				row[columnName(key)] = node.Value
			case yaml.SequenceNode:
				// skills: [Mapping, Survey] is accepted as a comma list
				values := make([]string, 0, len(node.Content))
				for _, item := range node.Content {
					if item.Kind != yaml.ScalarNode {
						return nil, fmt.Errorf("%s entry %d: %s must be a list of plain values (line %d)", sheet, i+1, key, item.Line)
					}
					values = append(values, item.Value)
				}
				row[columnName(key)] = strings.Join(values, ", ")
			default:
				return nil, fmt.Errorf("%s entry %d: %s must be a plain value (line %d)", sheet, i+1, key, node.Line)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columnName maps a sheet heading such as "Current Assignment" to its column.
func columnName(heading string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(heading)), " ", "_")
}

// Ensure Reader implements the interface
var _ secondary.WorkbookReader = (*Reader)(nil)
