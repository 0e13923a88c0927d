package wire

import (
	"encoding/json"
	"fmt"

	"github.com/HunterBartelt/TinyTracker/internal/codec"
	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// EncodeSyncCode serializes the complete snapshot and wraps it in the
// text-safe codec: the copy-paste transfer channel for when no camera is
// available. No truncation, no delta encoding, no precision loss.
func EncodeSyncCode(snap models.Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return codec.Encode(data), nil
}

// DecodeSyncCode reverses EncodeSyncCode into a partial dataset ready for
// the merge engine. Settings embedded in the code are ignored; only event
// lists transfer. A code that fails to decode or parse fails with
// common.ErrInvalidSyncCode.
func DecodeSyncCode(code string) (models.Dataset, error) {
	raw, err := codec.Decode(code)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %v", common.ErrInvalidSyncCode, err)
	}

	var ds models.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %v", common.ErrInvalidSyncCode, err)
	}
	return ds, nil
}
