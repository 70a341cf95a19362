package ml

import (
	"fmt"
	"log"
	"os"

	"ttc-rider-server/transform"
)

// LoadModel loads the fitted model and its metadata from disk. The
// metadata's recorded feature list must match the feature builder's
// current output schema exactly; a mismatch means the artifact was
// trained against a different feature set and serving it would produce
// silently skewed predictions, so loading fails instead.
//
// A missing meta file degrades to DefaultMeta (version "unknown") for
// old artifacts that never recorded one; those predate the feature list
// and skip the schema assertion with a warning.
func LoadModel(modelPath, metaPath string) (*LinearModel, Meta, error) {
	model, err := ReadLinearModelFromJSON(modelPath)
	if err != nil {
		return nil, Meta{}, err
	}

	meta := DefaultMeta()
	if _, err := os.Stat(metaPath); err == nil {
		meta, err = ReadMetaFromJSON(metaPath)
		if err != nil {
			return nil, Meta{}, err
		}
	} else {
		log.Printf("[ml] no metadata at %s, using version %q", metaPath, meta.ModelVersion)
	}

	if len(meta.Features) > 0 {
		if err := assertFeatureSchema(meta.Features); err != nil {
			return nil, Meta{}, err
		}
	} else {
		log.Printf("[ml] metadata records no feature list; skipping schema assertion")
	}

	log.Printf("[ml] loaded model %s", meta.ModelVersion)
	return model, meta, nil
}

func assertFeatureSchema(recorded []string) error {
	expected := transform.FeatureNames
	if len(recorded) != len(expected) {
		return fmt.Errorf("model expects %d features %v, feature builder produces %d %v: refusing to serve",
			len(recorded), recorded, len(expected), expected)
	}
	for i, name := range expected {
		if recorded[i] != name {
			return fmt.Errorf("model feature %d is %q, feature builder produces %q: refusing to serve",
				i, recorded[i], name)
		}
	}
	return nil
}
