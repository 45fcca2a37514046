package state

// Config selects the documents a device audit compares.
type Config struct {
	// DeviceID is the configuration item the state documents describe.
	DeviceID string `mapstructure:"device_id" default:"f5-bigip-a1"`
	// Root is the wrapper segment prepended to every drift path.
	Root string `mapstructure:"root" default:"virtual_server_root"`
	// Backend selects where the documents are read from (file, bucket).
	Backend string `mapstructure:"backend" default:"file"`
	// DesiredPath is the local path of the desired-state document.
	DesiredPath string `mapstructure:"desired_path" default:"gold_standard.yaml"`
	// ActualPath is the local path of the actual-state document.
	ActualPath string `mapstructure:"actual_path" default:"f5_actual_state.json"`
	// DesiredObject is the object key of the published desired state.
	DesiredObject string `mapstructure:"desired_object" default:"gold/gold_standard.yaml"`
	// ActualObject is the object key of the captured device snapshot.
	ActualObject string `mapstructure:"actual_object" default:"snapshots/f5_actual_state.json"`
}

const (
	// BackendFile reads state documents from the local filesystem.
	BackendFile = "file"
	// BackendBucket reads state documents from object storage.
	BackendBucket = "bucket"
)

// IsValidBackend reports whether the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendBucket:
		return true
	default:
		return false
	}
}
