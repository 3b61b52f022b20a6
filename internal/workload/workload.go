// Package workload reads process lists from files and exports results.
package workload

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/requests"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown workload format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func LoadFile(path string) (*requests.ScheduleRequests, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	return Parse(f, format)
}

func Parse(r io.Reader, format Format) (*requests.ScheduleRequests, error) {
	switch format {
	case FormatCSV:
		return parseCSV(r)
	case FormatJSON:
		return parseJSON(r)
	case FormatYAML:
		return parseYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// parseCSV reads rows of pid,arrival,burst[,priority]. A first row starting
// with "pid" is treated as a header.
func parseCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "pid") {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: expected 3 or 4 fields, got %d", i+1, len(row))
		}

		values := make([]int, 3)
		for j, field := range row[1:] {
			values[j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: values[0],
			BurstTime:   values[1],
			Priority:    values[2],
		})
	}
	return request, nil
}

func parseJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var jobs []requests.Job
		if err := json.Unmarshal(trimmed, &jobs); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return &requests.ScheduleRequests{Jobs: jobs}, nil
	}

	var request requests.ScheduleRequests
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return &request, nil
}

func parseYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var jobs []requests.Job
		if err := node.Decode(&jobs); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
		return &requests.ScheduleRequests{Jobs: jobs}, nil
	}

	var request requests.ScheduleRequests
	if err := node.Decode(&request); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	return &request, nil
}
