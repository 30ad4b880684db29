package sync

import (
	"errors"
	"os"
)

// Export bundle artifact names. The layout is a filesystem contract shared
// with existing exports and must not change.
const (
	ManifestFile    = "metadata.json"
	LocationsFile   = "locations.json"
	ItemsFile       = "items.json"
	InventoryFile   = "inventory.json"
	ScanHistoryFile = "scan_history.json"
)

// UnknownWorkstation is the sentinel identity used when no workstation name
// is configured and the hostname is unavailable.
const UnknownWorkstation = "unknown"

// ErrMissingManifest indicates a source directory is not a valid export
// bundle: its metadata descriptor is absent. During consolidation this is a
// per-source skippable failure; for a direct import it is fatal.
var ErrMissingManifest = errors.New("export bundle manifest not found")

// Manifest is the metadata descriptor written alongside the collection
// snapshots of an export bundle.
type Manifest struct {
	// ExportDate is the ISO-8601 timestamp of the export.
	ExportDate string `json:"export_date"`
	// Workstation identifies the originating machine.
	Workstation string `json:"workstation"`
	// SinceDate is the recency filter applied to inventory and scan
	// history, or null for a full snapshot.
	SinceDate *string `json:"since_date"`
}

// Counts reports rows handled per collection, for caller-visible
// confirmation of an export or import.
type Counts struct {
	Locations   int `json:"locations"`
	Items       int `json:"items"`
	Inventory   int `json:"inventory"`
	ScanHistory int `json:"scan_history"`
}

// ResolveWorkstation determines this machine's identity: the configured
// value wins, then the hostname, then the "unknown" sentinel.
func ResolveWorkstation(configured string) string {
	if configured != "" {
		return configured
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return UnknownWorkstation
}
