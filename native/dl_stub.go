// MODUL: dl_stub
// ZWECK: Stub wenn dieser Build keine Shared Libraries laden kann
// INPUT: Keine
// OUTPUT: ErrShimUnavailable
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: dl.go
// HINWEISE: cgo auf Nicht-Unix oder ohne cgo auf Architekturen ohne goffi-Support

//go:build (cgo && !linux && !darwin && !freebsd) || (!cgo && !amd64 && !arm64)

package native

func openShim(string) (shim, error) {
	return nil, ErrShimUnavailable
}
