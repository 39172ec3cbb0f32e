// Package jettons defines the records jettonmap works with: the locally
// authored description of a jetton (Record), the remote source's answer for
// an address (Attestation), and the deduplicated aggregate catalog
// (Collection) together with its YAML loader and JSON store.
package jettons
