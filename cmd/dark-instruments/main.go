// Command dark-instruments drives an Android device through adb.
package main

import "github.com/devicelab-dev/dark-instruments/pkg/cli"

func main() {
	cli.Execute()
}
