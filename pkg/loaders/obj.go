package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-solid-raytracer/pkg/core"
)

// OBJData is a parsed Wavefront OBJ model flattened to indexed
// triangles. When the file carries normals the Normals slice runs
// parallel to Vertices, so a corner used with two different normals is
// duplicated.
type OBJData struct {
	Vertices []core.Point
	Normals  []core.Direction
	Faces    [][3]int
}

// LoadOBJ reads a Wavefront OBJ file. Faces with more than three
// corners are fan-triangulated; grouping, material and texture
// statements are ignored.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()
	return parseOBJ(file, filename)
}

func parseOBJ(r io.Reader, filename string) (*OBJData, error) {
	var (
		positions  []core.Point
		normals    []core.Direction
		out        OBJData
		hasNormals bool
	)
	// Face corners are keyed by their (vertex, normal) index pair so a
	// position reused with different normals becomes a distinct vertex.
	remap := make(map[[2]int]int)

	corner := func(token string) (int, error) {
		parts := strings.Split(token, "/")
		vIdx, err := resolveIndex(parts[0], len(positions))
		if err != nil {
			return 0, fmt.Errorf("vertex index %q: %w", parts[0], err)
		}
		nIdx := -1
		if len(parts) == 3 && parts[2] != "" {
			nIdx, err = resolveIndex(parts[2], len(normals))
			if err != nil {
				return 0, fmt.Errorf("normal index %q: %w", parts[2], err)
			}
		}

		key := [2]int{vIdx, nIdx}
		if idx, ok := remap[key]; ok {
			return idx, nil
		}
		idx := len(out.Vertices)
		out.Vertices = append(out.Vertices, positions[vIdx])
		if nIdx >= 0 {
			out.Normals = append(out.Normals, normals[nIdx])
			hasNormals = true
		} else {
			out.Normals = append(out.Normals, core.Direction{})
		}
		remap[key] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseCoords(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
			}
			positions = append(positions, core.NewPoint(p[0], p[1], p[2]))

		case "vn":
			n, err := parseCoords(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
			}
			normals = append(normals, core.NewDirection(n[0], n[1], n[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs at least 3 corners, got %d", filename, lineNum, len(fields)-1)
			}
			first, err := corner(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
			}
			prev, err := corner(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
			}
			for _, token := range fields[3:] {
				next, err := corner(token)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", filename, lineNum, err)
				}
				out.Faces = append(out.Faces, [3]int{first, prev, next})
				prev = next
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file %s: %w", filename, err)
	}

	if !hasNormals {
		out.Normals = nil
	}
	logger.Infof("parsed %s: %d vertices, %d normals, %d triangles",
		filename, len(out.Vertices), len(out.Normals), len(out.Faces))
	return &out, nil
}

// resolveIndex converts a 1-based OBJ index, negative to count from
// the end of the list, into a 0-based offset.
func resolveIndex(token string, listLen int) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	var offset int
	if index < 0 {
		offset = listLen + index
	} else {
		offset = index - 1
	}
	if index == 0 || offset < 0 || offset >= listLen {
		return 0, fmt.Errorf("index %d out of range for list of %d", index, listLen)
	}
	return offset, nil
}

func parseCoords(tokens []string) ([3]float64, error) {
	var v [3]float64
	if len(tokens) < 3 {
		return v, fmt.Errorf("expected 3 coordinates, got %d", len(tokens))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return v, fmt.Errorf("bad coordinate %q: %w", tokens[i], err)
		}
		v[i] = f
	}
	return v, nil
}
