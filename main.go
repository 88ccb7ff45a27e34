// Command microflow-designer inspects and converts microfluidic design
// files between the legacy layer JSON form and interchange v1.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"microflow-designer/internal/features"
	"microflow-designer/internal/project"
	"microflow-designer/internal/version"
	"microflow-designer/pkg/colorutil"
)

func main() {
	inPath := flag.String("in", "", "Path to a design file (.mfdesign) or legacy layer JSON")
	legacy := flag.Bool("legacy", false, "Treat input as a single legacy layer JSON document")
	outPath := flag.String("out", "", "Write the design back out in interchange v1 form")
	name := flag.String("name", "untitled", "Design name used when converting legacy input")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	formatter := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	log.SetFormatter(formatter)
	log.SetOutput(os.Stdout)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("microflow-designer %s", version.String())

	if *inPath == "" {
		fmt.Println("Usage: microflow-designer -in <path> [-legacy] [-out <path>] [-name <name>]")
		os.Exit(1)
	}

	design, err := loadDesign(*inPath, *legacy, *name)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *inPath, err)
	}

	layers, err := design.DecodeLayers()
	if err != nil {
		log.Fatalf("Failed to decode layers: %v", err)
	}

	log.Infof("Design %q: %d layer(s)", design.Name, len(layers))
	for _, l := range layers {
		summarize(l)
	}

	if *outPath != "" {
		if err := design.Save(*outPath); err != nil {
			log.Fatalf("Failed to write %s: %v", *outPath, err)
		}
		log.Infof("Wrote %s", *outPath)
	}
}

// loadDesign reads either a full design file or, with legacy set, a single
// legacy layer document wrapped into a fresh design.
func loadDesign(path string, legacy bool, name string) (*project.File, error) {
	if !legacy {
		return project.Load(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc features.LayerJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse legacy layer: %w", err)
	}

	l, err := features.FromJSON(doc)
	if err != nil {
		return nil, err
	}

	design := project.New(name)
	design.AddLayer(l)
	return design, nil
}

func summarize(l *features.Layer) {
	log.Infof("layer %s type=%s group=%s features=%d", l.ID(), l.LayerType(), l.Group(), l.FeatureCount())

	if l.Color != "" {
		c, err := colorutil.ParseColor(l.Color)
		if err != nil {
			log.Warnf("layer %s has unparseable color %q", l.ID(), l.Color)
		} else {
			log.Debugf("  color %s", colorutil.FormatColor(c))
		}
	}

	for macro, n := range l.CountByMacro() {
		log.Debugf("  %-8s x%d", macro, n)
	}
}
