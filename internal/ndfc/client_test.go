package ndfc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnshulMangla/ndfcctl/internal/model"
)

const fabricPath = "/appcenter/cisco/ndfc/api/v1/lan-fabric/rest/top-down/fabrics/Fabric1/networks"

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(ts.URL, "admin", "secret", false)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   string
		wantErr    bool
		wantToken  string
	}{
		{
			name:       "200 with token",
			statusCode: http.StatusOK,
			response:   `{"token":"abc123"}`,
			wantToken:  "abc123",
		},
		{
			name:       "200 with jwttoken fallback",
			statusCode: http.StatusOK,
			response:   `{"jwttoken":"jwt456"}`,
			wantToken:  "jwt456",
		},
		{
			name:       "200 without any token is still a success",
			statusCode: http.StatusOK,
			response:   `{"status":"ok"}`,
			wantToken:  "",
		},
		{
			name:       "200 with non-JSON body is still a success",
			statusCode: http.StatusOK,
			response:   `welcome`,
			wantToken:  "",
		},
		{
			name:       "401 is a failure",
			statusCode: http.StatusUnauthorized,
			response:   `{"error":"bad credentials"}`,
			wantErr:    true,
		},
		{
			name:       "500 is a failure",
			statusCode: http.StatusInternalServerError,
			response:   `boom`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/login" {
					t.Errorf("path = %s, want /login", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %s, want application/json", ct)
				}
				var body map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("decoding login body: %v", err)
				}
				if body["userName"] != "admin" || body["userPasswd"] != "secret" || body["domain"] != "local" {
					t.Errorf("login body = %v", body)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response))
			}))
			defer ts.Close()

			client := newTestClient(ts)
			err := client.Authenticate("local")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if client.token != tt.wantToken {
				t.Errorf("token = %q, want %q", client.token, tt.wantToken)
			}
		})
	}
}

func TestAuthenticateAttachesBearerToken(t *testing.T) {
	var listAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			w.Write([]byte(`{"token":"abc123"}`))
		case fabricPath:
			listAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if err := client.Authenticate("local"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if _, err := client.ListNetworks("Fabric1"); err != nil {
		t.Fatalf("ListNetworks() error = %v", err)
	}
	if listAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q, want %q", listAuth, "Bearer abc123")
	}
}

func TestAuthenticateKeepsSessionCookie(t *testing.T) {
	var gotCookie string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			// No token in the body; the session cookie is the only
			// authentication artifact.
			http.SetCookie(w, &http.Cookie{Name: "AuthCookie", Value: "cookie-value"})
			w.Write([]byte(`{}`))
		case fabricPath:
			if c, err := r.Cookie("AuthCookie"); err == nil {
				gotCookie = c.Value
			}
			w.Write([]byte(`[]`))
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if err := client.Authenticate("local"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if _, err := client.ListNetworks("Fabric1"); err != nil {
		t.Fatalf("ListNetworks() error = %v", err)
	}
	if gotCookie != "cookie-value" {
		t.Errorf("session cookie = %q, want %q", gotCookie, "cookie-value")
	}
}

func TestAuthenticateTLSVerificationDisabled(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abc"}`))
	}))
	defer ts.Close()

	// The test server's certificate is self-signed; with verification off
	// the login must still go through.
	client := NewClient(ts.URL, "admin", "secret", false)
	if err := client.Authenticate("local"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
}

func TestAuthenticateTransportError(t *testing.T) {
	client := NewClient("https://127.0.0.1:1", "admin", "secret", false)
	if err := client.Authenticate("local"); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}

func TestListNetworks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != fabricPath {
			t.Errorf("path = %s, want %s", r.URL.Path, fabricPath)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Write([]byte(`[{"displayName":"Prod-Net","networkName":"NET1","networkId":30001},{"displayName":"Dev-Net","networkName":"NET2"}]`))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	networks, err := client.ListNetworks("Fabric1")
	if err != nil {
		t.Fatalf("ListNetworks() error = %v", err)
	}
	if len(networks) != 2 {
		t.Fatalf("len(networks) = %d, want 2", len(networks))
	}
	if networks[0].DisplayName() != "Prod-Net" {
		t.Errorf("displayName = %q, want Prod-Net", networks[0].DisplayName())
	}
	if got := networks[0].GetString("networkId"); got != "30001" {
		t.Errorf("networkId = %q, want 30001", got)
	}
}

func TestListNetworksServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if _, err := client.ListNetworks("Fabric1"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFindByDisplayName(t *testing.T) {
	listing := `[
		{"displayName":"Prod-Net","networkName":"NET1"},
		{"displayName":"Dup-Net","networkName":"NET2"},
		{"displayName":"Dup-Net","networkName":"NET3"}
	]`

	tests := []struct {
		name     string
		target   string
		wantName string
		wantErr  error
	}{
		{name: "exact match", target: "Prod-Net", wantName: "NET1"},
		{name: "first of duplicates wins", target: "Dup-Net", wantName: "NET2"},
		{name: "case sensitive miss", target: "prod-net", wantErr: ErrNetworkNotFound},
		{name: "not found", target: "Missing", wantErr: ErrNetworkNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(listing))
			}))
			defer ts.Close()

			client := newTestClient(ts)
			network, err := client.FindByDisplayName("Fabric1", tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindByDisplayName() error = %v", err)
			}
			if network.NetworkName() != tt.wantName {
				t.Errorf("networkName = %q, want %q", network.NetworkName(), tt.wantName)
			}
		})
	}
}

func TestFindByDisplayNameListFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if _, err := client.FindByDisplayName("Fabric1", "Prod-Net"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUpdateDisplayName(t *testing.T) {
	statuses := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"200 is success", http.StatusOK, false},
		{"201 is success", http.StatusCreated, false},
		{"202 is success", http.StatusAccepted, false},
		{"400 is failure", http.StatusBadRequest, true},
		{"500 is failure", http.StatusInternalServerError, true},
	}

	for _, tt := range statuses {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("method = %s, want PUT", r.Method)
				}
				if want := fabricPath + "/NET1"; r.URL.Path != want {
					t.Errorf("path = %s, want %s", r.URL.Path, want)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"id":"7","displayName":"New-Name"}`))
			}))
			defer ts.Close()

			client := newTestClient(ts)
			network := model.Network{"networkName": "NET1", "displayName": "Old-Name"}
			err := client.UpdateDisplayName("Fabric1", network, "New-Name")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateDisplayName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateDisplayNamePayload(t *testing.T) {
	var payload map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	network := model.Network{
		"networkName":    "NET1",
		"displayName":    "Old-Name",
		"vrf":            "blue",
		"networkStatus":  "DEPLOYED",
		"deploymentInfo": "not-allowed",
	}
	if err := client.UpdateDisplayName("Fabric1", network, "New-Name"); err != nil {
		t.Fatalf("UpdateDisplayName() error = %v", err)
	}

	if payload["displayName"] != "New-Name" {
		t.Errorf("displayName = %v, want New-Name", payload["displayName"])
	}
	if payload["vrf"] != "blue" {
		t.Errorf("vrf = %v, want blue", payload["vrf"])
	}
	if _, ok := payload["networkStatus"]; ok {
		t.Error("payload contains networkStatus")
	}
	if _, ok := payload["deploymentInfo"]; ok {
		t.Error("payload contains a non-allowlisted field")
	}
}

func TestUpdateDisplayNameMissingNetworkName(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	client := newTestClient(ts)
	network := model.Network{"displayName": "Old-Name"}
	err := client.UpdateDisplayName("Fabric1", network, "New-Name")
	if !errors.Is(err, ErrMissingNetworkName) {
		t.Fatalf("error = %v, want ErrMissingNetworkName", err)
	}
	if calls != 0 {
		t.Errorf("HTTP calls = %d, want 0", calls)
	}
}

func TestUpdateDisplayNameUnparseableResponseStaysSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("queued"))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	network := model.Network{"networkName": "NET1", "displayName": "Old-Name"}
	if err := client.UpdateDisplayName("Fabric1", network, "New-Name"); err != nil {
		t.Fatalf("UpdateDisplayName() error = %v, want success despite unparseable body", err)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://ndfc.example.com/", "admin", "secret", false)
	if client.baseURL != "https://ndfc.example.com" {
		t.Errorf("baseURL = %q, want https://ndfc.example.com", client.baseURL)
	}
}
