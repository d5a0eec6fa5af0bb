package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// objLoaderBackend reads the triangle subset of Wavefront OBJ: "v" positions and
// three-corner "f" faces. Only the position index of each corner is kept, so
// "f 1 2 3", "f 1/1 2/2 3/3", "f 1//1 2//2 3//3" and "f 1/1/1 2/2/2 3/3/3" all
// describe the same triangle. Normals and texture coordinates are read past. The first
// "o" statement names the result.
type objLoaderBackend struct {
	color common.Color
}

var _ loaderBackend = &objLoaderBackend{}

func newOBJLoaderBackend(color common.Color) *objLoaderBackend {
	return &objLoaderBackend{color: color}
}

func (b *objLoaderBackend) Extensions() []string {
	return []string{".obj"}
}

func (b *objLoaderBackend) Load(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, err
	}
	defer f.Close()
	return b.LoadReader(f)
}

func (b *objLoaderBackend) LoadReader(r io.Reader) (ImportResult, error) {
	var (
		positions [][3]float32
		faces     []uint32
		skipped   int
		name      string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, ok := parsePosition(fields[1:])
			if !ok {
				skipped++
				continue
			}
			positions = append(positions, p)
		case "o":
			if name == "" && len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
		case "vn", "vt":
			// unused
		case "f":
			tri, ok := parseFace(fields[1:])
			if !ok {
				skipped++
				continue
			}
			faces = append(faces, tri[:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return ImportResult{}, fmt.Errorf("failed to read obj: %w", err)
	}

	result := ImportResult{Skipped: skipped, Name: name}
	for t := 0; t+2 < len(faces); t += 3 {
		if int(faces[t]) >= len(positions) || int(faces[t+1]) >= len(positions) || int(faces[t+2]) >= len(positions) {
			result.Skipped++
			continue
		}
		result.Geometry.Indices = append(result.Geometry.Indices, faces[t:t+3]...)
	}
	if len(result.Geometry.Indices) == 0 {
		return result, nil
	}

	result.Geometry.Vertices = make([]mesh.Vertex, len(positions))
	for i, p := range positions {
		result.Geometry.Vertices[i] = mesh.Vertex{Position: p, Color: b.color}
	}
	return result, nil
}

// parsePosition reads "x y z", ignoring an optional w.
func parsePosition(fields []string) ([3]float32, bool) {
	var p [3]float32
	if len(fields) < 3 {
		return p, false
	}
	for i := range p {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return p, false
		}
		p[i] = float32(f)
	}
	return p, true
}

// parseFace reads exactly three corners and returns their 0-based position indices.
func parseFace(fields []string) ([3]uint32, bool) {
	var tri [3]uint32
	if len(fields) != 3 {
		return tri, false
	}
	for i, corner := range fields {
		v, _, _ := strings.Cut(corner, "/")
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return tri, false
		}
		tri[i] = uint32(n - 1)
	}
	return tri, true
}
