package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genterrain"
	"github.com/Flokey82/genterrain/export"
	"github.com/Flokey82/genterrain/snapshot"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
	input      = flag.String("in", "", "snapshot to load (generates a world if empty)")
	configPath = flag.String("config", "", "YAML config overriding the defaults")
	seed       = flag.Int64("seed", 1234, "seed of the generated world")
	width      = flag.Int("width", 64, "width of the generated world")
	height     = flag.Int("height", 48, "height of the generated world")
	saveWorld  = flag.String("save", "", "write the (generated) snapshot to this file")
	outGeoJSON = flag.String("geojson", "terrain.geojson", "GeoJSON output file (empty to skip)")
	outPNG     = flag.String("png", "terrain.png", "PNG preview output file (empty to skip)")
	pngSize    = flag.Int("png_size", 1024, "size of the PNG preview")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genterrain.NewConfig()
	if *configPath != "" {
		var err error
		if cfg, err = genterrain.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Verbose = true

	var world *snapshot.Snapshot
	if *input != "" {
		var err error
		if world, err = snapshot.Load(*input); err != nil {
			log.Fatal(err)
		}
	} else {
		world = snapshot.Generate(*width, *height, *seed)
	}
	if *saveWorld != "" {
		if err := world.Save(*saveWorld); err != nil {
			log.Fatal(err)
		}
	}

	cfg.CellSize = world.CellSize
	t := genterrain.Synthesize(world.ToLocations(), world.Projection(), cfg)
	log.Printf("revision %016x: %d lakes, %d rivers, %d forests, %d mountain ridges, %d skipped",
		t.Revision, len(t.Lakes), len(t.Rivers), len(t.Forests), len(t.Mountains), len(t.Skipped))

	if *outGeoJSON != "" {
		data, err := export.GeoJSON(t)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*outGeoJSON, data, 0o644); err != nil {
			log.Fatal(err)
		}
	}
	if *outPNG != "" {
		f, err := os.Create(*outPNG)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.PNG(f, t, *pngSize); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
