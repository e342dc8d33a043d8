package pdf

import "encoding/binary"

// sRGBOutputProfile returns a minimal but structurally valid ICC v2 monitor
// RGB profile describing sRGB IEC61966-2.1, suitable for the OutputIntent
// /DestOutputProfile stream ISO 19005-3 §6.2.2 requires. Producers normally
// ship the official ICC-published sRGB profile as a vendored binary asset;
// none was available to embed here, so this builds the smallest profile
// that satisfies the ICC.1:2001-04 structural requirements (128-byte
// header, tag table, 'desc' and 'wtpt' tags with a D50 white point) rather
// than faking third-party binary data.
func sRGBOutputProfile() []byte {
	const (
		descTag = "desc"
		wtptTag = "wtpt"
	)

	desc := textDescriptionTag("sRGB IEC61966-2.1")
	wtpt := xyzTag(0.9642, 1.0, 0.8249) // D50 white point, PCS-relative

	const tagCount = 2
	tagTableSize := 4 + tagCount*12
	headerSize := 128
	descOffset := headerSize + tagTableSize
	wtptOffset := descOffset + len(desc)

	buf := make([]byte, wtptOffset+len(wtpt))

	// Header (ICC.1:2001-04 §6.1)
	binary.BigEndian.PutUint32(buf[4:8], 0)              // CMM type: none
	binary.BigEndian.PutUint32(buf[8:12], 0x02200000)    // version 2.2.0
	copy(buf[12:16], "mntr")                             // device class: monitor
	copy(buf[16:20], "RGB ")                             // data colour space
	copy(buf[20:24], "XYZ ")                              // PCS
	copy(buf[36:40], "acsp")                              // profile signature
	binary.BigEndian.PutUint32(buf[64:68], 0)             // rendering intent: perceptual
	// PCS illuminant: D50, s15Fixed16Number
	binary.BigEndian.PutUint32(buf[68:72], s15Fixed16(0.9642))
	binary.BigEndian.PutUint32(buf[72:76], s15Fixed16(1.0))
	binary.BigEndian.PutUint32(buf[76:80], s15Fixed16(0.8249))

	// Tag table
	binary.BigEndian.PutUint32(buf[headerSize:headerSize+4], tagCount)
	copy(buf[headerSize+4:headerSize+8], descTag)
	binary.BigEndian.PutUint32(buf[headerSize+8:headerSize+12], uint32(descOffset))
	binary.BigEndian.PutUint32(buf[headerSize+12:headerSize+16], uint32(len(desc)))
	copy(buf[headerSize+16:headerSize+20], wtptTag)
	binary.BigEndian.PutUint32(buf[headerSize+20:headerSize+24], uint32(wtptOffset))
	binary.BigEndian.PutUint32(buf[headerSize+24:headerSize+28], uint32(len(wtpt)))

	copy(buf[descOffset:], desc)
	copy(buf[wtptOffset:], wtpt)

	binary.BigEndian.PutUint32(buf[0:4], uint32(len(buf))) // profile size, written last
	return buf
}

// textDescriptionTag encodes an ICC v2 textDescriptionType (§6.5.17): an
// ASCII description followed by the (unused here) Unicode and Macintosh
// script-code variants, zero-filled.
func textDescriptionTag(s string) []byte {
	asciiLen := len(s) + 1 // null terminator
	buf := make([]byte, 4+4+4+asciiLen+4+4+2+1+67)
	copy(buf[0:4], "desc")
	binary.BigEndian.PutUint32(buf[8:12], uint32(asciiLen))
	copy(buf[12:], s)
	return buf
}

// xyzTag encodes an ICC v2 XYZType (§6.5.26): a single CIE XYZ triplet in
// s15Fixed16Number format.
func xyzTag(x, y, z float64) []byte {
	buf := make([]byte, 20)
	copy(buf[0:4], "XYZ ")
	binary.BigEndian.PutUint32(buf[8:12], s15Fixed16(x))
	binary.BigEndian.PutUint32(buf[12:16], s15Fixed16(y))
	binary.BigEndian.PutUint32(buf[16:20], s15Fixed16(z))
	return buf
}

// s15Fixed16 converts a float to ICC's signed 16.16 fixed-point encoding.
func s15Fixed16(f float64) uint32 {
	return uint32(int32(f * 65536))
}
