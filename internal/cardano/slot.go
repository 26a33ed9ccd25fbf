package cardano

import (
	"fmt"
	"time"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/pkg/safe"
)

// slotConfig anchors the slot arithmetic of one network: the unix
// millisecond timestamp and slot number of a reference point plus the slot
// length in milliseconds.
type slotConfig struct {
	zeroTimeMs int64
	zeroSlot   uint64
	slotLength int64
}

var slotConfigs = map[model.Network]slotConfig{
	model.NetworkMainnet: {zeroTimeMs: 1596059091000, zeroSlot: 4492800, slotLength: 1000},
	model.NetworkPreprod: {zeroTimeMs: 1655769600000, zeroSlot: 86400, slotLength: 1000},
	model.NetworkPreview: {zeroTimeMs: 1666656000000, zeroSlot: 0, slotLength: 1000},
}

// EnclosingSlot converts a wall-clock instant to the slot containing it.
func EnclosingSlot(network model.Network, at time.Time) (uint64, error) {
	cfg, ok := slotConfigs[network]
	if !ok {
		return 0, fmt.Errorf("no slot config for network %q", network)
	}
	elapsed := at.UnixMilli() - cfg.zeroTimeMs
	slots, err := safe.Uint64(elapsed / cfg.slotLength)
	if err != nil {
		return 0, fmt.Errorf("instant %s predates network %q: %w", at, network, err)
	}
	return cfg.zeroSlot + slots, nil
}

// ValidityWindow is the ±150s slot bound applied to every redeemer-spending
// transaction so a stale submission cannot land far from its eligibility
// check.
const validitySkew = 150 * time.Second

// ValidityBounds returns the invalid-before and invalid-hereafter slots for
// a transaction assembled at the given instant.
func ValidityBounds(network model.Network, at time.Time) (invalidBefore, invalidHereafter uint64, err error) {
	before, err := EnclosingSlot(network, at.Add(-validitySkew))
	if err != nil {
		return 0, 0, err
	}
	after, err := EnclosingSlot(network, at.Add(validitySkew))
	if err != nil {
		return 0, 0, err
	}
	if before > 0 {
		before--
	}
	return before, after + 1, nil
}
