//go:build !linux

package rt

func realtime() func() {
	return func() {}
}
