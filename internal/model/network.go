package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Network is one NDFC network record. The controller returns a large,
// version-dependent set of fields; the tool keeps all of them as-is and only
// interprets the handful of keys it reads or writes.
type Network map[string]any

// GetString returns the value under key rendered as a string, or "" when the
// key is absent or null. Numeric and boolean values are formatted so that
// records decoded with json.Number round-trip unchanged.
func (n Network) GetString(key string) string {
	v, ok := n[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// StringOr is GetString with a fallback for absent or empty values.
func (n Network) StringOr(key, fallback string) string {
	if s := n.GetString(key); s != "" {
		return s
	}
	return fallback
}

// NetworkName returns the record's unique identifier, the addressing key for
// update requests.
func (n Network) NetworkName() string {
	return n.GetString("networkName")
}

// DisplayName returns the human-assigned label. Display names are not
// guaranteed unique on the controller.
func (n Network) DisplayName() string {
	return n.GetString("displayName")
}

// Clone returns a copy of the record whose top-level keys can be modified
// without touching the original.
func (n Network) Clone() Network {
	if n == nil {
		return nil
	}
	out := make(Network, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}

// ParseTemplateConfig decodes the JSON document NDFC embeds as a string in
// the networkTemplateConfig field.
func ParseTemplateConfig(raw string) (Network, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var cfg Network
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing template config: %w", err)
	}
	return cfg, nil
}
