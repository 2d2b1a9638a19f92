// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testutil

import (
	"bytes"
	"encoding/binary"
)

const oggSerial = 0x4d55

// Ogg returns a CRC-valid Ogg stream carrying each packet on its own page.
// Packets must be shorter than 255*255 bytes.
func Ogg(packets ...[]byte) []byte {
	var buf bytes.Buffer
	for i, p := range packets {
		var flags byte
		if i == 0 {
			flags |= 0x02
		}
		if i == len(packets)-1 {
			flags |= 0x04
		}
		buf.Write(oggPage(flags, uint32(i), p))
	}
	return buf.Bytes()
}

func oggPage(flags byte, seq uint32, packet []byte) []byte {
	var lacing []byte
	for n := len(packet); ; n -= 255 {
		if n < 255 {
			lacing = append(lacing, byte(n))
			break
		}
		lacing = append(lacing, 255)
	}

	page := make([]byte, 27, 27+len(lacing)+len(packet))
	copy(page, "OggS")
	page[5] = flags
	binary.LittleEndian.PutUint32(page[14:18], oggSerial)
	binary.LittleEndian.PutUint32(page[18:22], seq)
	page[26] = byte(len(lacing))
	page = append(page, lacing...)
	page = append(page, packet...)

	binary.LittleEndian.PutUint32(page[22:26], oggCRC(page))
	return page
}

func oggCRC(page []byte) uint32 {
	var crc uint32
	for _, b := range page {
		crc ^= uint32(b) << 24
		for range 8 {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ 0x04c11db7
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// OggVorbisIdent is the Vorbis identification header packet.
func OggVorbisIdent() []byte {
	// version, channels, rate, three bitrates, block sizes, framing bit
	p := append([]byte("\x01vorbis"), make([]byte, 23)...)
	p[11] = 2
	binary.LittleEndian.PutUint32(p[12:16], 44100)
	p[28] = 0xb8
	p[29] = 1
	return p
}

// OggVorbis returns a Vorbis stream with the given comments, a setup header
// and one audio packet.
func OggVorbis(comments ...string) []byte {
	comment := append([]byte("\x03vorbis"), vorbisComment(comments)...)
	comment = append(comment, 1)
	return Ogg(OggVorbisIdent(), comment, []byte("\x05vorbis\x00"), make([]byte, 40))
}

// OggOpus returns an Opus stream with the given comments.
func OggOpus(comments ...string) []byte {
	head := append([]byte("OpusHead"), make([]byte, 11)...)
	head[8] = 1 // version
	head[9] = 2 // channels
	binary.LittleEndian.PutUint16(head[10:12], 312)
	binary.LittleEndian.PutUint32(head[12:16], 48000)

	return Ogg(head, append([]byte("OpusTags"), vorbisComment(comments)...), make([]byte, 40))
}

// OggSpeexHeader is the 80 byte Speex header packet.
func OggSpeexHeader() []byte {
	p := make([]byte, 80)
	copy(p, "Speex   ")
	copy(p[8:], "1.2.0")
	le := binary.LittleEndian
	le.PutUint32(p[28:], 1)     // version id
	le.PutUint32(p[32:], 80)    // header size
	le.PutUint32(p[36:], 16000) // rate
	le.PutUint32(p[40:], 1)     // mode
	le.PutUint32(p[44:], 4)     // bitstream version
	le.PutUint32(p[48:], 1)     // channels
	le.PutUint32(p[52:], 0xffffffff)
	le.PutUint32(p[56:], 320) // frame size
	le.PutUint32(p[64:], 1)   // frames per packet
	return p
}

// OggSpeex returns a Speex stream whose second packet is a bare Vorbis
// comment structure.
func OggSpeex(comments ...string) []byte {
	return Ogg(OggSpeexHeader(), vorbisComment(comments), make([]byte, 38))
}

// OggFLACHeader is the Ogg FLAC mapping header announcing headers metadata
// packets after it.
func OggFLACHeader(headers uint16) []byte {
	p := []byte("\x7fFLAC\x01\x00\x00\x00fLaC\x00\x00\x00\x22")
	binary.BigEndian.PutUint16(p[7:9], headers)
	return append(p, make([]byte, 0x22)...)
}

// OggFLAC returns an Ogg FLAC stream with one VORBIS_COMMENT packet.
func OggFLAC(comments ...string) []byte {
	return Ogg(OggFLACHeader(1), flacCommentBlock(comments), []byte{0xFF, 0xF8, 0x69, 0x08})
}
