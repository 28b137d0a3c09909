package health

import "os"

func IsDocker() (ok bool) {
	_, err := os.Stat("/.dockerenv")
	return err == nil
}
