// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tags

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/MKhiriev/go-music-upload/models"
	"github.com/dhowden/tag"
)

const (
	oggHeaderSize = 27

	// maxOggFLACHeaders bounds the header packet scan of an Ogg FLAC stream
	// that does not announce its header count.
	maxOggFLACHeaders = 16

	flacVorbisCommentBlock = 4
)

var (
	oggCapture = []byte("OggS")

	vorbisIdent   = []byte("\x01vorbis")
	vorbisComment = []byte("\x03vorbis")
	opusHead      = []byte("OpusHead")
	opusTags      = []byte("OpusTags")
	speexHead     = []byte("Speex   ")
	oggFLACHead   = []byte("\x7fFLAC")
	flacMagic     = []byte("fLaC")
)

// readOgg picks the codec from the first packet of the stream. A stream that
// ends before its comment header is untagged.
func readOgg(data []byte) (models.TrackMetadata, error) {
	s := &oggStream{data: data}

	first, err := s.packet(0)
	if err != nil {
		return endOfHeaders(err)
	}

	switch {
	case bytes.HasPrefix(first, vorbisIdent):
		return readOggComment(s, data, vorbisComment)
	case bytes.HasPrefix(first, opusHead):
		return readOggComment(s, data, opusTags)
	case bytes.HasPrefix(first, speexHead):
		comment, err := s.packet(1)
		if err != nil {
			return endOfHeaders(err)
		}
		return vorbisCommentMetadata(comment)
	case bytes.HasPrefix(first, oggFLACHead):
		return readOggFLAC(s, first)
	}

	return models.TrackMetadata{}, tag.ErrNoTagsFound
}

// readOggComment checks that the second packet is the comment header and
// lets tag.ReadFrom parse it.
func readOggComment(s *oggStream, data, prefix []byte) (models.TrackMetadata, error) {
	comment, err := s.packet(1)
	if err != nil {
		return endOfHeaders(err)
	}
	if !bytes.HasPrefix(comment, prefix) {
		return models.TrackMetadata{}, errOggCommentHeader
	}
	return readTags(data)
}

// readOggFLAC walks the metadata block packets that follow the mapping
// header: 0x7F "FLAC", version (2 bytes), header count (uint16 BE), "fLaC",
// STREAMINFO.
func readOggFLAC(s *oggStream, first []byte) (models.TrackMetadata, error) {
	if len(first) < 13 || !bytes.Equal(first[9:13], flacMagic) {
		return models.TrackMetadata{}, errOggFLACHeader
	}

	count := int(binary.BigEndian.Uint16(first[7:9]))
	if count == 0 {
		count = maxOggFLACHeaders
	}

	for i := 1; i <= count; i++ {
		block, err := s.packet(i)
		if err != nil {
			return endOfHeaders(err)
		}
		// 0xFF is a frame sync: the audio has started
		if len(block) == 0 || block[0] == 0xFF {
			break
		}
		if len(block) < 4 {
			return models.TrackMetadata{}, errTruncated
		}

		size := int(block[1])<<16 | int(block[2])<<8 | int(block[3])
		if block[0]&0x7F == flacVorbisCommentBlock {
			if len(block)-4 < size {
				return models.TrackMetadata{}, errTruncated
			}
			return vorbisCommentMetadata(block[4 : 4+size])
		}
		if block[0]&0x80 != 0 {
			break
		}
	}

	return models.TrackMetadata{}, tag.ErrNoTagsFound
}

func endOfHeaders(err error) (models.TrackMetadata, error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return models.TrackMetadata{}, tag.ErrNoTagsFound
	}
	return models.TrackMetadata{}, err
}

// oggStream reassembles the packets of the first logical bitstream. Pages of
// other bitstreams are checked and dropped.
type oggStream struct {
	data    []byte
	serial  uint32
	started bool
	partial []byte
	packets [][]byte
}

// packet returns the n-th packet (zero based), reading pages as needed.
// io.EOF means the stream ended before the packet was complete.
func (s *oggStream) packet(n int) ([]byte, error) {
	for len(s.packets) <= n {
		if len(s.data) == 0 {
			return nil, io.EOF
		}
		if err := s.readPage(); err != nil {
			return nil, err
		}
	}
	return s.packets[n], nil
}

func (s *oggStream) readPage() error {
	if len(s.data) < oggHeaderSize {
		return io.ErrUnexpectedEOF
	}
	if !bytes.HasPrefix(s.data, oggCapture) {
		return errOggCapture
	}

	segments := int(s.data[26])
	if len(s.data) < oggHeaderSize+segments {
		return io.ErrUnexpectedEOF
	}
	lacing := s.data[oggHeaderSize : oggHeaderSize+segments]

	size := oggHeaderSize + segments
	for _, l := range lacing {
		size += int(l)
	}
	if len(s.data) < size {
		return io.ErrUnexpectedEOF
	}

	page := s.data[:size]
	s.data = s.data[size:]

	if oggChecksum(page) != binary.LittleEndian.Uint32(page[22:26]) {
		return errOggChecksum
	}

	serial := binary.LittleEndian.Uint32(page[14:18])
	if !s.started {
		s.serial, s.started = serial, true
	} else if serial != s.serial {
		return nil
	}

	body := page[oggHeaderSize+segments:]
	for _, l := range lacing {
		s.partial = append(s.partial, body[:l]...)
		body = body[l:]
		if l < 255 {
			s.packets = append(s.packets, s.partial)
			s.partial = nil
		}
	}

	return nil
}

var oggCRCTable = func() (table [256]uint32) {
	for i := range table {
		r := uint32(i) << 24
		for range 8 {
			if r&0x80000000 != 0 {
				r = r<<1 ^ 0x04c11db7
			} else {
				r <<= 1
			}
		}
		table[i] = r
	}
	return table
}()

// oggChecksum computes the page CRC with the checksum field read as zero.
func oggChecksum(page []byte) uint32 {
	var crc uint32
	for i, b := range page {
		if i >= 22 && i < 26 {
			b = 0
		}
		crc = crc<<8 ^ oggCRCTable[byte(crc>>24)^b]
	}
	return crc
}
