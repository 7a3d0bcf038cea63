package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Flokey82/genterrain"
	"github.com/Flokey82/genterrain/export"
	"github.com/Flokey82/genterrain/snapshot"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/gorilla/mux"
)

var (
	seed       int64  = 12345
	width      int    = 64
	height     int    = 48
	input      string = ""
	configPath string = ""
	addr       string = ":3333"
	cacheSize  int    = 8
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&width, "width", width, "width of the generated world")
	flag.IntVar(&height, "height", height, "height of the generated world")
	flag.StringVar(&input, "in", input, "snapshot to serve (generates a world if empty)")
	flag.StringVar(&configPath, "config", configPath, "YAML config overriding the defaults")
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.IntVar(&cacheSize, "cache_size", cacheSize, "number of cached terrain revisions")
}

// server holds the current world and memoizes its terrain.
type server struct {
	mu    sync.RWMutex
	world *snapshot.Snapshot
	cfg   *genterrain.Config
	cache *genterrain.Cache[vectors.Vec2]
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := genterrain.NewConfig()
	if configPath != "" {
		var err error
		if cfg, err = genterrain.LoadConfig(configPath); err != nil {
			log.Fatal(err)
		}
	}

	// Initialize the world.
	world := snapshot.Generate(width, height, seed)
	if input != "" {
		var err error
		if world, err = snapshot.Load(input); err != nil {
			log.Fatal(err)
		}
	}
	s := &server{cfg: cfg}
	s.setWorld(world)

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/terrain.geojson", s.geoJSONHandler).Methods(http.MethodGet)
	router.HandleFunc("/terrain/{layer}.geojson", s.geoJSONHandler).Methods(http.MethodGet)
	router.HandleFunc("/preview.png", s.previewHandler).Methods(http.MethodGet)
	router.HandleFunc("/snapshot", s.snapshotHandler).Methods(http.MethodPut, http.MethodPost)
	log.Fatal(http.ListenAndServe(addr, router))
}

// setWorld replaces the served world. Worlds with a different cell size get
// a fresh cache, since the projection changes.
func (s *server) setWorld(world *snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world == nil || s.world.CellSize != world.CellSize {
		cfg := *s.cfg
		cfg.CellSize = world.CellSize
		s.cache = genterrain.NewCache(world.Projection(), &cfg, cacheSize)
	}
	s.world = world
}

// terrain returns the terrain of the current world.
func (s *server) terrain() *genterrain.Terrain {
	s.mu.RLock()
	world, cache := s.world, s.cache
	s.mu.RUnlock()
	return cache.Get(world.ToLocations())
}

func (s *server) geoJSONHandler(res http.ResponseWriter, req *http.Request) {
	var layers []export.Layer
	if name, ok := mux.Vars(req)["layer"]; ok {
		layer, err := export.ParseLayer(name)
		if err != nil {
			http.Error(res, err.Error(), http.StatusNotFound)
			return
		}
		layers = append(layers, layer)
	}
	data, err := export.GeoJSON(s.terrain(), layers...)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

func (s *server) previewHandler(res http.ResponseWriter, req *http.Request) {
	// Get the url parameter 'size'.
	size := 1024
	if v := req.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 8192 {
			http.Error(res, "invalid size", http.StatusBadRequest)
			return
		}
		size = n
	}
	var buf bytes.Buffer
	if err := export.PNG(&buf, s.terrain(), size); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

func (s *server) snapshotHandler(res http.ResponseWriter, req *http.Request) {
	world, err := snapshot.Read(http.MaxBytesReader(res, req.Body, 64<<20))
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	s.setWorld(world)
	t := s.terrain()
	res.Header().Set("Content-Type", "text/plain")
	res.Write([]byte(strconv.FormatUint(t.Revision, 16) + "\n"))
}
