// Package constants provides shared constants used throughout jettonmap.
// This includes timeouts, file permissions, and the conventional locations
// of description files and the aggregate catalog.
package constants

import "time"

// Transport limits
const (
	// DefaultRequestTimeout bounds each request to the remote source
	DefaultRequestTimeout = 10 * time.Second

	// MaxResponseSize caps how much of a response body is read
	MaxResponseSize = 4 << 20
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Layout of a registry checkout
const (
	// DefaultJettonsDir is the directory holding one description file per jetton
	DefaultJettonsDir = "jettons"

	// DefaultExtension is the extension description files must carry
	DefaultExtension = ".yaml"

	// DefaultOutputFile is the aggregate catalog
	DefaultOutputFile = "jettons.json"

	// JSONIndent is the indentation used for the aggregate catalog
	JSONIndent = "  "
)

// Remote source defaults
const (
	// DefaultTonCenterURL is the TON Center v2 API base
	DefaultTonCenterURL = "https://toncenter.com/api/v2"

	// DefaultIPFSGateway is used to resolve ipfs:// metadata links
	DefaultIPFSGateway = "https://ipfs.io/ipfs/"

	// DefaultJettonDecimals applies when metadata omits decimals (TEP-64)
	DefaultJettonDecimals = 9

	// MaxJettonDecimals is the largest decimals value accepted
	MaxJettonDecimals = 255
)
