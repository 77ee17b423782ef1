// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

//go:build wasm

package crypto

import (
	"unsafe"

	"github.com/ethereum/go-ethereum/common"
)

// On wasm replay targets the Keccak sponge is outsourced to a host import
// instead of running the pure Go permutation inside the guest.

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	keccak256Digest(b, data...)
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	keccak256Digest(h[:], data...)
	return h
}

func keccak256Digest(out []byte, data ...[]byte) {
	if len(out) != 32 {
		panic("output buffer must be 32 bytes")
	}

	flattened := make([]byte, 0)
	for _, b := range data {
		flattened = append(flattened, b...)
	}

	var inputPtr unsafe.Pointer
	if len(flattened) > 0 {
		inputPtr = unsafe.Pointer(&flattened[0])
	}

	outsourcedKeccak(inputPtr, uint32(len(flattened)), unsafe.Pointer(&out[0]))
}

//go:wasmimport vmcrypto keccak256
func outsourcedKeccak(inBuf unsafe.Pointer, inLen uint32, outBuf unsafe.Pointer)
