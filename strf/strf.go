/*
 * strf.go, part of gostrain
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package strf persists analysis reports as compressed JSON. The
//compression is chosen from the last letter of the filename: 'z' for
//gzip, 'r' for flate, and zstd for 's', 'f' or anything else. A reader
//side is provided so reports can be recovered for later aggregation.
package strf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//flate compresses hard enough for the small reports involved
const flateLevel int = 9

func newAnyWriter(a io.Writer, name string) (io.WriteCloser, error) {
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'z':
		return gzip.NewWriterLevel(a, flateLevel)
	case 'r':
		return flate.NewWriter(a, flateLevel)
	default: //'s', 'f' and anything else
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the object. It can not be used after this call.
func (s stdql) Close() error {
	s.closeql()
	return nil
}

func newAnyReader(a io.Reader, name string) (io.ReadCloser, error) {
	format := strings.ToLower(name)[len(name)-1]
	switch format {
	case 'z':
		return gzip.NewReader(a)
	case 'r':
		return flate.NewReader(a), nil
	default:
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	}
}

//Write serializes data as JSON, compressed per the filename, into a new
//file called name.
func Write(name string, data interface{}) error {
	if name == "" {
		return Error{"empty filename", name, nil, true}
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	h, err := newAnyWriter(f, name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	enc := json.NewEncoder(h)
	if err := enc.Encode(data); err != nil {
		h.Close()
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	if err := h.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return f.Close()
}

//Read decodes the JSON document in the file called name, decompressed
//per the filename, into data.
func Read(name string, data interface{}) error {
	f, err := os.Open(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	h, err := newAnyReader(bufio.NewReader(f), name)
	if err != nil {
		return Error{err.Error(), name, []string{"Read"}, true}
	}
	defer h.Close()
	dec := json.NewDecoder(h)
	if err := dec.Decode(data); err != nil {
		return Error{err.Error(), name, []string{"Read"}, true}
	}
	return nil
}

//Error is the general structure for report-file errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("strf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error.
func (err Error) Format() string { return "strf" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
