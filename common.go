package derpdu

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"errors"
	"strconv"
)

/*
official import aliases.
*/
var (
	mkerr  func(string) error = errors.New
	itoa   func(int) string   = strconv.Itoa
	hexstr func([]byte) string = hex.EncodeToString
)

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}
