package ndfc

import "github.com/AnshulMangla/ndfcctl/internal/model"

// updateFields is the set of keys NDFC accepts in a network PUT body. Every
// other field returned by a GET, networkStatus in particular, is server
// assigned and must not be sent back.
var updateFields = []string{
	"id", "fabric", "networkName", "displayName", "networkId",
	"networkTemplate", "networkExtensionTemplate", "networkTemplateConfig",
	"vrf", "tenantName", "serviceNetworkTemplate", "source",
	"interfaceGroups", "primaryNetworkId", "type", "primaryNetworkName",
	"vlanId", "vlanName", "hierarchicalKey",
}

// BuildUpdatePayload projects a fetched network record onto the PUT
// allowlist with displayName replaced. Keys absent from the source record
// stay absent. The input record is never modified.
func BuildUpdatePayload(network model.Network, newDisplayName string) model.Network {
	src := network.Clone()
	src["displayName"] = newDisplayName

	payload := make(model.Network, len(updateFields))
	for _, key := range updateFields {
		if v, ok := src[key]; ok {
			payload[key] = v
		}
	}

	// Not in the allowlist, but the invariant is load-bearing enough to
	// enforce on the output as well.
	delete(payload, "networkStatus")
	return payload
}
