/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package container

import (
	"bytes"
	"errors"
	"testing"
)

func TestWrapSplitRoundTrip(t *testing.T) {
	payload := []byte("hello world")
	compressed := []byte{1, 2, 3, 4}

	wrapped := Wrap(FamilyLCPComp, payload, compressed)

	hdr, body, err := Split(wrapped)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if hdr.Family != FamilyLCPComp {
		t.Fatalf("Family = %v, want %v", hdr.Family, FamilyLCPComp)
	}

	if !bytes.Equal(body, compressed) {
		t.Fatalf("body = %v, want %v", body, compressed)
	}

	if err := Verify(hdr, payload); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyDetectsChecksumMismatch(t *testing.T) {
	wrapped := Wrap(FamilyRLE, []byte("original"), []byte{9})
	hdr, _, err := Split(wrapped)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	err = Verify(hdr, []byte("tampered"))
	if err == nil {
		t.Fatalf("expected a checksum mismatch error")
	}

	var cerr *ChecksumError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *ChecksumError, got %T: %v", err, err)
	}
}

func TestSplitRejectsBadMagic(t *testing.T) {
	data := []byte("XXXX0\x00\x00\x00\x00\x00\x00\x00\x00\x00")

	if _, _, err := Split(data); err == nil {
		t.Fatalf("expected an error for a bad magic number")
	}
}

func TestSplitRejectsShortInput(t *testing.T) {
	if _, _, err := Split([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected an error for input shorter than the header")
	}
}

func TestSplitRejectsUnsupportedVersion(t *testing.T) {
	wrapped := Wrap(FamilyLZ78, []byte("x"), []byte{1})
	wrapped[4] = Version + 1

	if _, _, err := Split(wrapped); err == nil {
		t.Fatalf("expected an error for an unsupported version")
	}
}

func TestFamilyStringNamesEveryConstant(t *testing.T) {
	families := []Family{FamilyLCPComp, FamilyLZSW, FamilyLZ78, FamilyRLE, FamilyLFS}

	for _, f := range families {
		if f.String() == "unknown" {
			t.Fatalf("Family %d stringifies as unknown", f)
		}
	}
}
