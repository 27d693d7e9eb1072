//go:build windows

package main

func detectTerminalWidth() int {
	return widthFromEnv()
}
