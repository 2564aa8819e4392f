package ndfc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AnshulMangla/ndfcctl/internal/model"
)

// SaveNetworkFile writes the record as indented JSON to
// network_<displayName with spaces replaced>[_updated].json in the working
// directory and returns the filename.
func SaveNetworkFile(network model.Network, displayName string, updated bool) (string, error) {
	name := "network_" + strings.ReplaceAll(displayName, " ", "_")
	if updated {
		name += "_updated"
	}
	name += ".json"

	data, err := json.MarshalIndent(network, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding network details: %w", err)
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}
