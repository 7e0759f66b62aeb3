package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/df07/go-solid-raytracer/pkg/renderer"
	"github.com/df07/go-solid-raytracer/pkg/scene"
)

// InspectResponse describes what the ray through one pixel center
// hits. Intervals lists the [enter, exit] parameter spans of the hit
// object when its shape has an interior.
type InspectResponse struct {
	Hit       bool         `json:"hit"`
	Object    string       `json:"object"`
	Distance  float64      `json:"distance"`
	Point     [3]float64   `json:"point"`
	Normal    [3]float64   `json:"normal"`
	UV        [2]float64   `json:"uv"`
	Intervals [][2]float64 `json:"intervals,omitempty"`
}

// handleInspect casts the unjittered ray through a pixel and reports
// the nearest hit as JSON.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}
	sceneObj, ok := scene.Builtin(name)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "unknown scene: "+name)
		return
	}

	width, err := parseIntParam(query, "width", 400, 16, 2000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 300, 16, 2000)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid y coordinate")
		return
	}
	if x < 0 || x >= width || y < 0 || y >= height {
		writeJSONError(w, http.StatusBadRequest, "pixel coordinates out of bounds")
		return
	}

	camera := renderer.NewCamera(sceneObj.Camera, width, height)
	ray := camera.CenterRay(x, y)
	rng := rand.New(rand.NewSource(0))

	hit, obj, ok := sceneObj.Intersect(ray, rng)
	if !ok {
		json.NewEncoder(w).Encode(InspectResponse{Hit: false})
		return
	}

	point := ray.At(hit.T)
	response := InspectResponse{
		Hit:      true,
		Object:   obj.Name,
		Distance: hit.T,
		Point:    [3]float64{point.X, point.Y, point.Z},
		Normal:   [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		UV:       [2]float64{hit.UV.U, hit.UV.V},
	}
	if intervals, solid := obj.Intervals(ray); solid {
		for _, iv := range intervals {
			response.Intervals = append(response.Intervals, [2]float64{iv.Enter.T, iv.Exit.T})
		}
	}
	json.NewEncoder(w).Encode(response)
}
