// Package save implements save-game serialization: a JSON envelope around
// the live GameState, tagged with a session id and a content fingerprint
// so a save from one game's Defs is never silently loaded into another.
package save

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/nathoo/gnusto/engine/state"
	"github.com/nathoo/gnusto/types"
)

// Data is the on-disk save format. SchemaVersion guards against loading a
// save written by an incompatible engine version; DefsFingerprint guards
// against loading a save from different content.
type Data struct {
	SchemaVersion   int             `json:"schema_version"`
	SessionID       string          `json:"session_id"`
	DefsFingerprint string          `json:"defs_fingerprint"`
	Turn            int             `json:"turn"`
	State           *types.GameState `json:"state"`
}

const schemaVersion = 1

// Fingerprint hashes the stable parts of defs (game title, start location,
// and the sorted item/location ids) with blake2b-256, so Verify can detect a
// save being replayed against different content instead of silently
// corrupting state.
func Fingerprint(defs *state.Defs) (string, error) {
	type snapshot struct {
		Title     string
		Start     string
		ItemIDs   []string
		LocIDs    []string
	}
	snap := snapshot{Title: defs.Game.Title, Start: defs.Game.Start}
	for id := range defs.Items {
		snap.ItemIDs = append(snap.ItemIDs, id)
	}
	for id := range defs.Locations {
		snap.LocIDs = append(snap.LocIDs, id)
	}
	sort.Strings(snap.ItemIDs)
	sort.Strings(snap.LocIDs)

	b, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// New builds a save envelope from the live state. sessionID should be
// reused across saves within the same play session (generated once at
// Engine startup) so related saves can be grouped; a caller with no
// existing session can pass the empty string and New generates a fresh one.
func New(s *types.GameState, defs *state.Defs, sessionID string) (*Data, error) {
	fp, err := Fingerprint(defs)
	if err != nil {
		return nil, fmt.Errorf("save: fingerprint defs: %w", err)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &Data{
		SchemaVersion:   schemaVersion,
		SessionID:       sessionID,
		DefsFingerprint: fp,
		Turn:            s.TurnCount,
		State:           s,
	}, nil
}

// Marshal serializes a save envelope to JSON.
func Marshal(d *Data) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal parses a save envelope from JSON.
func Unmarshal(data []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("save: decode: %w", err)
	}
	if d.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("save: unsupported schema version %d", d.SchemaVersion)
	}
	return &d, nil
}

// Verify checks that d was saved against the same content currently loaded.
func Verify(d *Data, defs *state.Defs) error {
	fp, err := Fingerprint(defs)
	if err != nil {
		return err
	}
	if fp != d.DefsFingerprint {
		return fmt.Errorf("save: content mismatch — this save is from a different game")
	}
	return nil
}
