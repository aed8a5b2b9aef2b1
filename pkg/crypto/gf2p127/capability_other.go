//go:build !amd64 && !arm64

package gf2p127

func init() {
	initCapabilities()
}
