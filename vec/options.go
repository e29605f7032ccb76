package vec

import (
	"os"
	"runtime"

	"github.com/ynqa/wego/pkg/model/word2vec"
	"gopkg.in/yaml.v3"
)

// Options are the tunable trainer knobs; everything else is fixed at sane
// word2vec defaults.
type Options struct {
	Dim       int    `yaml:"dim"`
	Window    int    `yaml:"window"`
	MinCount  int    `yaml:"min_count"`
	Iter      int    `yaml:"iter"`
	ModelType string `yaml:"model_type"`
}

// DefaultOptions keeps MinCount at 1 so very small corpora still yield a
// usable vocabulary.
func DefaultOptions() Options {
	return Options{
		Dim:       100,
		Window:    5,
		MinCount:  1,
		Iter:      15,
		ModelType: "skipgram",
	}
}

// LoadOptions reads a yaml options file, with DefaultOptions filling any
// field the file omits.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()
	d, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := yaml.Unmarshal(d, &o); err != nil {
		return o, err
	}
	return o, nil
}

func (o Options) word2vec() word2vec.Options {
	return word2vec.Options{
		BatchSize:          4096,
		Dim:                o.Dim,
		DocInMemory:        true,
		Goroutines:         runtime.NumCPU(),
		Initlr:             0.025,
		Iter:               o.Iter,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           100,
		MinCount:           o.MinCount,
		MinLR:              0.025 * 1.0e-4,
		ModelType:          word2vec.ModelType(o.ModelType),
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             o.Window,
	}
}
