package ndfc

import (
	"fmt"
	"io"
	"strings"

	"github.com/AnshulMangla/ndfcctl/internal/model"
)

// templateConfigFields are the template-config keys worth surfacing, in
// print order. Anything else in the embedded document is passed through
// untouched but not displayed.
var templateConfigFields = []struct {
	key   string
	label string
}{
	{"vlanId", "VLAN ID"},
	{"segmentId", "Segment ID"},
	{"mcastGroup", "Multicast Group"},
	{"gatewayIpAddress", "Gateway IP"},
	{"mtu", "MTU"},
	{"tag", "Tag"},
	{"enableIR", "Enable IR"},
	{"isLayer2Only", "Layer 2 Only"},
}

// RenderDetails writes the fixed-layout detail block for one network.
// Missing fields render as N/A; an unparseable embedded template config is
// reported but never fatal.
func RenderDetails(w io.Writer, network model.Network) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "NETWORK DETAILS")
	fmt.Fprintln(w, divider)

	fmt.Fprintf(w, "Network Name: %s\n", network.StringOr("networkName", "N/A"))
	fmt.Fprintf(w, "Display Name: %s\n", network.StringOr("displayName", "N/A"))
	fmt.Fprintf(w, "Network ID:   %s\n", network.StringOr("networkId", "N/A"))
	fmt.Fprintf(w, "Fabric:       %s\n", network.StringOr("fabric", "N/A"))
	fmt.Fprintf(w, "Type:         %s\n", network.StringOr("type", "N/A"))
	fmt.Fprintf(w, "Status:       %s\n", network.StringOr("networkStatus", "N/A"))
	fmt.Fprintf(w, "VRF:          %s\n", network.StringOr("vrf", "N/A"))
	fmt.Fprintf(w, "Tenant:       %s\n", network.StringOr("tenantName", "N/A"))

	fmt.Fprintln(w, "\nTemplate Information:")
	fmt.Fprintf(w, "   Network Template:   %s\n", network.StringOr("networkTemplate", "N/A"))
	fmt.Fprintf(w, "   Extension Template: %s\n", network.StringOr("networkExtensionTemplate", "N/A"))

	if raw := network.GetString("networkTemplateConfig"); raw != "" {
		cfg, err := model.ParseTemplateConfig(raw)
		if err != nil {
			fmt.Fprintln(w, "   Unable to parse network template configuration")
		} else {
			fmt.Fprintln(w, "\nNetwork Configuration:")
			for _, f := range templateConfigFields {
				if v := cfg.GetString(f.key); v != "" {
					fmt.Fprintf(w, "   %s: %s\n", f.label, v)
				}
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
}
