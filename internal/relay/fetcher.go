package relay

import (
	"context"
	"encoding/json"
	"os"

	"github.com/apbharucha/poker/advisor/model"
)

// FileFetcher loads tuned advisor parameters from a JSON file. It satisfies
// model.Fetcher, so a missing or malformed file leaves the engine on its
// baseline heuristics.
type FileFetcher struct {
	Path string
}

// Fetch reads and decodes the parameter file.
func (f FileFetcher) Fetch(ctx context.Context) (model.Parameters, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return model.Parameters{}, err
	}

	var params model.Parameters
	if err := json.Unmarshal(data, &params); err != nil {
		return model.Parameters{}, err
	}
	return params, nil
}
