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

// Command lcpcomp is the CLI front end for this module: it resolves
// an algorithm string against package registry, reads the input file
// (or, with -r, every file under a directory) fully into memory, runs
// Compress or Decompress, and writes the result through a temp file
// renamed into place so a failed run never leaves a partial output.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/algostr"
	"github.com/tudocomp-go/lcpcomp/container"
	"github.com/tudocomp-go/lcpcomp/internal"
	"github.com/tudocomp-go/lcpcomp/registry"
)

// Exit codes, per this module's external interface: 0 success, 1
// usage error, 2 I/O error, 3 algorithm error, 4 checksum mismatch.
// Success needs no constant: app.Run only returns a non-nil error.
const (
	exitUsage     = 1
	exitIO        = 2
	exitAlgorithm = 3
	exitChecksum  = 4
)

func main() {
	app := cli.NewApp()
	app.Name = "lcpcomp"
	app.Usage = "LCP-driven and related LZSS-family text compressors"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "input, i", Usage: "input file or, with -r, directory"},
		cli.StringFlag{Name: "output, o", Usage: "output file or, with -r, directory"},
		cli.BoolFlag{Name: "decompress, d", Usage: "decompress instead of compress"},
		cli.StringFlag{Name: "algorithm, a", Value: "lcpcomp", Usage: "algorithm string, e.g. lcpcomp(threshold=5,flatten=true)"},
		cli.BoolFlag{Name: "recursive, r", Usage: "process every regular file under --input"},
		cli.BoolFlag{Name: "verbose, v", Usage: "log each compression phase as it starts and ends"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lcpcomp:", err)
		os.Exit(exitCodeFor(err))
	}
}

type logListener struct{}

func (logListener) ProcessEvent(evt *tdc.Event) {
	fmt.Fprintln(os.Stderr, evt.String())
}

func run(c *cli.Context) error {
	input := c.String("input")
	output := c.String("output")

	if input == "" || output == "" {
		return &usageError{msg: "--input and --output are both required"}
	}

	algo, err := algostr.Parse(c.String("algorithm"))
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	var listeners []tdc.Listener
	if c.Bool("verbose") {
		listeners = append(listeners, logListener{})
	}

	files, err := internal.CreateFileList(input, nil, c.Bool("recursive"), true, true)
	if err != nil {
		return &ioError{msg: err.Error()}
	}

	for _, f := range files {
		dst := output

		if c.Bool("recursive") {
			rel, err := filepath.Rel(input, f.FullPath)
			if err != nil {
				return &ioError{msg: err.Error()}
			}
			dst = filepath.Join(output, rel)
		}

		if c.Bool("decompress") {
			if err := decompressFile(f.FullPath, dst, listeners); err != nil {
				return err
			}
		} else {
			if err := compressFile(f.FullPath, dst, algo, listeners); err != nil {
				return err
			}
		}
	}

	return nil
}

func compressFile(inPath, outPath string, algo *algostr.Value, listeners []tdc.Listener) error {
	payload, err := os.ReadFile(inPath)
	if err != nil {
		return &ioError{msg: err.Error()}
	}

	family, ok := familyForIdent(algo.Ident)
	if !ok {
		return &usageError{msg: fmt.Sprintf("unknown algorithm %q", algo.Ident)}
	}

	out, err := registry.Default().Resolve("compressor", algo)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	comp, ok := out.(tdc.Compressor)
	if !ok {
		return &usageError{msg: fmt.Sprintf("%q does not resolve to a compressor", algo.Ident)}
	}

	attachListeners(comp, listeners)

	compressed, err := comp.Compress(payload)
	if err != nil {
		return &algorithmError{msg: err.Error()}
	}

	return writeAtomic(outPath, container.Wrap(family, payload, compressed))
}

func decompressFile(inPath, outPath string, listeners []tdc.Listener) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return &ioError{msg: err.Error()}
	}

	hdr, body, err := container.Split(data)
	if err != nil {
		return &algorithmError{msg: err.Error()}
	}

	decomp, err := decompressorForFamily(hdr.Family)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	attachListeners(decomp, listeners)

	payload, err := decomp.Decompress(body)
	if err != nil {
		return &algorithmError{msg: err.Error()}
	}

	if err := container.Verify(hdr, payload); err != nil {
		return &checksumError{msg: err.Error()}
	}

	return writeAtomic(outPath, payload)
}

// decompressorForFamily builds the default-options decompressor for a
// family. No algorithm string is needed to decode: every Compress/
// Decompress pair in this module keeps the tunables that affect
// encoding (threshold, window, flatten) entirely out of Decompress's
// own signature, so the container's family tag is sufficient.
func decompressorForFamily(family container.Family) (tdc.Decompressor, error) {
	out, err := registry.Default().ResolveString("compressor", family.String())
	if err != nil {
		return nil, err
	}

	d, ok := out.(tdc.Decompressor)
	if !ok {
		return nil, errors.Errorf("lcpcomp: family %q does not resolve to a decompressor", family)
	}

	return d, nil
}

func familyForIdent(ident string) (container.Family, bool) {
	for _, f := range []container.Family{
		container.FamilyLCPComp,
		container.FamilyLZSW,
		container.FamilyLZ78,
		container.FamilyRLE,
		container.FamilyLFS,
	} {
		if f.String() == ident {
			return f, true
		}
	}

	return 0, false
}

type listenerAttacher interface {
	AddListener(l tdc.Listener)
}

func attachListeners(v interface{}, listeners []tdc.Listener) {
	la, ok := v.(listenerAttacher)
	if !ok {
		return
	}

	for _, l := range listeners {
		la.AddListener(l)
	}
}

// writeAtomic stages data in an in-memory buffer before it ever
// touches disk, then writes the staged copy to a temp file renamed
// into place, so a run that fails partway through never leaves a
// truncated or mismatched file at path.
func writeAtomic(path string, data []byte) error {
	staged := internal.NewBufferStream()

	if _, err := staged.Write(data); err != nil {
		return &ioError{msg: err.Error()}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ioError{msg: err.Error()}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".lcpcomp-*")
	if err != nil {
		return &ioError{msg: err.Error()}
	}

	defer os.Remove(tmp.Name())

	buf := make([]byte, staged.Len())
	if _, err := staged.Read(buf); err != nil {
		tmp.Close()
		return &ioError{msg: err.Error()}
	}

	if err := staged.Close(); err != nil {
		tmp.Close()
		return &ioError{msg: err.Error()}
	}

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return &ioError{msg: err.Error()}
	}

	if err := tmp.Close(); err != nil {
		return &ioError{msg: err.Error()}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &ioError{msg: err.Error()}
	}

	return nil
}

type usageError struct{ msg string }

func (this *usageError) Error() string { return this.msg }

type ioError struct{ msg string }

func (this *ioError) Error() string { return this.msg }

type algorithmError struct{ msg string }

func (this *algorithmError) Error() string { return this.msg }

type checksumError struct{ msg string }

func (this *checksumError) Error() string { return this.msg }

func exitCodeFor(err error) int {
	switch err.(type) {
	case *usageError:
		return exitUsage
	case *ioError:
		return exitIO
	case *algorithmError:
		return exitAlgorithm
	case *checksumError:
		return exitChecksum
	default:
		return int(tdc.ERR_UNKNOWN)
	}
}
