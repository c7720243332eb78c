package inference

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ModelTypeLinear       = "linear"
	ModelTypeTreeEnsemble = "tree_ensemble"
)

// on-disk description of a trained estimator, JSON or YAML
type artifact struct {
	ModelType    string   `json:"model_type" yaml:"model_type"`
	NFeatures    int      `json:"n_features" yaml:"n_features"`
	FeatureNames []string `json:"feature_names" yaml:"feature_names"`

	// linear
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`

	// tree_ensemble
	Aggregation  string   `json:"aggregation" yaml:"aggregation"`
	BaseScore    float64  `json:"base_score" yaml:"base_score"`
	LearningRate *float64 `json:"learning_rate" yaml:"learning_rate"`
	Trees        []Tree   `json:"trees" yaml:"trees"`
}

// LoadFile reads a model artifact. The format is picked by extension:
// .yaml/.yml are YAML, everything else is JSON.
func LoadFile(path string) (Regressor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(): failed to read model artifact: %w", err)
	}

	var a artifact
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &a)
	default:
		err = json.Unmarshal(data, &a)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadFile(): failed to decode %s: %w", path, err)
	}

	model, err := a.build()
	if err != nil {
		return nil, fmt.Errorf("LoadFile(): %s: %w", path, err)
	}
	log.Printf("LoadFile(): Loaded %s model from %s", model.Name(), path)
	return model, nil
}

func (a artifact) build() (Regressor, error) {
	switch a.ModelType {
	case ModelTypeLinear:
		return newLinearModel(a)
	case ModelTypeTreeEnsemble:
		return newTreeEnsemble(a)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, a.ModelType)
	}
}
