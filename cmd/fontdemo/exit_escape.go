//go:build !anykey

package main

import "github.com/go-theft-auto/fontdemo"

const exitPolicy = fontdemo.ExitOnEscape
