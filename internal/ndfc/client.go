package ndfc

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/AnshulMangla/ndfcctl/internal/model"
)

const (
	requestTimeout = 30 * time.Second
	networksPath   = "/appcenter/cisco/ndfc/api/v1/lan-fabric/rest/top-down/fabrics/%s/networks"
)

var (
	// ErrNetworkNotFound is returned when no network in the fabric carries
	// the requested display name.
	ErrNetworkNotFound = errors.New("network not found")

	// ErrMissingNetworkName is returned when a record cannot be used for an
	// update because its addressing key is absent.
	ErrMissingNetworkName = errors.New("network record has no networkName")

	// ErrCancelled is returned when the user declines the rename
	// confirmation.
	ErrCancelled = errors.New("update cancelled by user")
)

// Client talks to the NDFC REST API. One Client owns one HTTP session for
// the process lifetime: a cookie jar, fixed JSON headers and, after
// Authenticate, a bearer token. The session also keeps any cookies the
// controller sets at login, so deployments that never return a token field
// stay authenticated.
//
// Progress text printed by the methods is part of the tool's contract; the
// console output doubles as its UI.
type Client struct {
	baseURL  string
	username string
	password string
	token    string
	http     *http.Client
}

// NewClient creates a client for the given controller. TLS verification is
// normally off; NDFC deployments run self-signed certificates.
func NewClient(baseURL, username, password string, verifyTLS bool) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !verifyTLS},
			},
		},
	}
}

func (c *Client) do(method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

// Authenticate performs the domain login. Success is decided by the HTTP
// status alone: a 200 without a token field still counts, with the session
// cookie carrying the authentication from then on.
func (c *Client) Authenticate(domain string) error {
	fmt.Printf("Authenticating with domain: %s\n", domain)

	payload, err := json.Marshal(map[string]string{
		"userName":   c.username,
		"userPasswd": c.password,
		"domain":     domain,
	})
	if err != nil {
		return fmt.Errorf("encoding login payload: %w", err)
	}

	resp, err := c.do(http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		log.Error("Authentication request failed", "error", err)
		return fmt.Errorf("authentication: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Error("Authentication rejected", "status", resp.StatusCode)
		return fmt.Errorf("authentication failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		if t, ok := fields["token"].(string); ok && t != "" {
			c.token = t
		} else if t, ok := fields["jwttoken"].(string); ok && t != "" {
			c.token = t
		}
	}

	fmt.Println("Authentication successful")
	return nil
}

// ListNetworks returns every network in the fabric.
func (c *Client) ListNetworks(fabricName string) ([]model.Network, error) {
	url := c.baseURL + fmt.Sprintf(networksPath, fabricName)
	fmt.Printf("Retrieving all networks from fabric: %s\n", fabricName)
	fmt.Printf("API endpoint: %s\n", url)

	resp, err := c.do(http.MethodGet, url, nil)
	if err != nil {
		log.Error("Network list request failed", "error", err, "fabric", fabricName)
		return nil, fmt.Errorf("listing networks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Network list rejected", "status", resp.StatusCode, "fabric", fabricName)
		return nil, fmt.Errorf("listing networks failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var networks []model.Network
	if err := dec.Decode(&networks); err != nil {
		log.Error("Network list decode failed", "error", err, "fabric", fabricName)
		return nil, fmt.Errorf("decoding network list: %w", err)
	}

	fmt.Printf("Retrieved %d networks\n", len(networks))
	return networks, nil
}

// FindByDisplayName scans the fabric's networks for an exact, case-sensitive
// displayName match. Display names are not guaranteed unique; the first
// match in server order wins. On a miss every known display/network name
// pair is printed before ErrNetworkNotFound is returned.
func (c *Client) FindByDisplayName(fabricName, displayName string) (model.Network, error) {
	networks, err := c.ListNetworks(fabricName)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Searching for network with display name: %q\n", displayName)
	for _, n := range networks {
		if n.DisplayName() == displayName {
			fmt.Printf("Found matching network: %s\n", n.StringOr("networkName", "N/A"))
			return n, nil
		}
	}

	fmt.Printf("No network found with display name: %q\n", displayName)
	fmt.Println("Available networks:")
	for _, n := range networks {
		fmt.Printf("   - %s (networkName: %s)\n", n.StringOr("displayName", "N/A"), n.StringOr("networkName", "N/A"))
	}
	log.Warn("Network not found", "fabric", fabricName, "display_name", displayName, "candidates", len(networks))
	return nil, ErrNetworkNotFound
}

// UpdateDisplayName renames a network by PUTting the sanitized record back.
// The record must carry networkName; without it no request is made.
func (c *Client) UpdateDisplayName(fabricName string, network model.Network, newDisplayName string) error {
	networkName := network.NetworkName()
	if networkName == "" {
		log.Error("Network record is missing networkName, refusing to update")
		return ErrMissingNetworkName
	}

	url := c.baseURL + fmt.Sprintf(networksPath, fabricName) + "/" + networkName
	fmt.Println("Updating network display name...")
	fmt.Printf("PUT endpoint: %s\n", url)
	fmt.Printf("Old display name: %s\n", network.StringOr("displayName", "N/A"))
	fmt.Printf("New display name: %s\n", newDisplayName)

	body, err := json.Marshal(BuildUpdatePayload(network, newDisplayName))
	if err != nil {
		return fmt.Errorf("encoding update payload: %w", err)
	}

	resp, err := c.do(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		log.Error("Network update request failed", "error", err, "network", networkName)
		return fmt.Errorf("updating network: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		log.Error("Network update rejected", "status", resp.StatusCode, "network", networkName)
		return fmt.Errorf("updating network failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	fmt.Println("Network display name updated successfully")

	// Best-effort echo of the controller's response. The verdict is already
	// decided by the status code; a decode failure does not change it.
	var echoed model.Network
	if err := json.Unmarshal(respBody, &echoed); err == nil {
		fmt.Printf("Updated network ID: %s\n", echoed.StringOr("id", "N/A"))
		fmt.Printf("Confirmed display name: %s\n", echoed.StringOr("displayName", "N/A"))
	} else {
		fmt.Println("Update confirmed (response parsing skipped)")
	}

	log.Info("Network renamed", "fabric", fabricName, "network", networkName, "display_name", newDisplayName)
	return nil
}

// Close releases the idle connections held by the session.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
