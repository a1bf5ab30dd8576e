// Package parser reads the whitespace-delimited text formats used for
// contact edge lists, hierarchical partitions, and label arrays.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/proteinnetworks/insight/pkg/graph"
	"github.com/proteinnetworks/insight/pkg/insight"
)

// ReadEdgeList parses "i j weight" rows, one edge per line. Blank lines and
// lines starting with '#' are skipped. Node ids are 1-based.
func ReadEdgeList(r io.Reader) ([]graph.Edge, error) {
	var edges []graph.Edge
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected \"i j weight\", got %q",
				insight.ErrInputValue, lineNo, line)
		}
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node id %q: %v",
				insight.ErrInputValue, lineNo, parts[0], err)
		}
		j, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node id %q: %v",
				insight.ErrInputValue, lineNo, parts[1], err)
		}
		weight, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q: %v",
				insight.ErrInputValue, lineNo, parts[2], err)
		}
		edges = append(edges, graph.Edge{I: i, J: j, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges found", insight.ErrInputValue)
	}
	return edges, nil
}

// ReadPartitionLevels parses a hierarchical partition: one row per node, one
// column per level, coarsest level first. Returns levels[level][node].
func ReadPartitionLevels(r io.Reader) ([][]int, error) {
	var rows [][]int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		row := make([]int, len(parts))
		for c, part := range parts {
			label, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: label %q: %v",
					insight.ErrInputValue, lineNo, part, err)
			}
			row[c] = label
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d levels, expected %d",
				insight.ErrInputValue, lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no partition rows found", insight.ErrInputValue)
	}

	levels := make([][]int, len(rows[0]))
	for level := range levels {
		levels[level] = make([]int, len(rows))
		for node, row := range rows {
			levels[level][node] = row[level]
		}
	}
	return levels, nil
}

// ReadLabels parses a single label per line, such as a domain annotation.
func ReadLabels(r io.Reader) ([]int, error) {
	var labels []int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: label %q: %v",
				insight.ErrInputValue, lineNo, line, err)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labels found", insight.ErrInputValue)
	}
	return labels, nil
}

// ReadEdgeListFile opens and parses an edge list file.
func ReadEdgeListFile(filename string) ([]graph.Edge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open edge list %s: %w", filename, err)
	}
	defer file.Close()
	edges, err := ReadEdgeList(file)
	if err != nil {
		return nil, fmt.Errorf("parse edge list %s: %w", filename, err)
	}
	return edges, nil
}

// ReadPartitionLevelsFile opens and parses a partition file.
func ReadPartitionLevelsFile(filename string) ([][]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open partition %s: %w", filename, err)
	}
	defer file.Close()
	levels, err := ReadPartitionLevels(file)
	if err != nil {
		return nil, fmt.Errorf("parse partition %s: %w", filename, err)
	}
	return levels, nil
}

// ReadLabelsFile opens and parses a label file.
func ReadLabelsFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open labels %s: %w", filename, err)
	}
	defer file.Close()
	labels, err := ReadLabels(file)
	if err != nil {
		return nil, fmt.Errorf("parse labels %s: %w", filename, err)
	}
	return labels, nil
}
