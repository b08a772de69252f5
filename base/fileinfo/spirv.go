// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileinfo

import (
	"encoding/binary"

	"github.com/h2non/filetype"
)

// SPIRVMagic is the magic number at the start of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// SPIRVType is the [filetype] type registered for SPIR-V modules.
var SPIRVType = filetype.NewType("spv", "application/x-spirv")

func init() {
	filetype.AddMatcher(SPIRVType, spirvMatcher)
}

// spirvMatcher matches the SPIR-V magic number in either byte order.
func spirvMatcher(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	return binary.LittleEndian.Uint32(buf) == SPIRVMagic || binary.BigEndian.Uint32(buf) == SPIRVMagic
}

// IsSPIRV returns whether the given data starts with the SPIR-V magic number.
func IsSPIRV(data []byte) bool {
	return filetype.Is(data, SPIRVType.Extension)
}
