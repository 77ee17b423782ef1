// Copyright 2017 The go-ethereum Authors
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
	"errors"
	"unsafe"
)

// Ecrecover returns the uncompressed public key that created the given signature.
// On wasm replay targets the curve arithmetic is outsourced to the host, which
// must satisfy the same observable contract as the native backends.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub := make([]byte, 65)
	if outsourcedECRecovery(sliceToPointer(hash), uint32(len(hash)), sliceToPointer(sig), uint32(len(sig)), sliceToPointer(pub)) != 0 {
		return nil, errors.New("ecrecovery failed")
	}
	return pub, nil
}

func sliceToPointer(slice []byte) unsafe.Pointer {
	if len(slice) == 0 {
		return unsafe.Pointer(nil)
	}
	return unsafe.Pointer(&slice[0])
}

//go:wasmimport vmcrypto ecrecovery
func outsourcedECRecovery(hash unsafe.Pointer, hashLen uint32, sig unsafe.Pointer, sigLen uint32, pub unsafe.Pointer) uint32
