//go:build !linux

package schedhint

func apply(Priority) error {
	return ErrUnsupported
}
