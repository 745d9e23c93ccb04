package gpp

// GPP segments use the URL-safe Base64 alphabet without padding, and a
// segment may stop at any character count, including counts the standard
// library rejects (a five-character header is legal). Each character
// carries six bits; the final partial byte is zero-filled on the low end.

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// base64Vals maps alphabet bytes to their six-bit values, 0xFF elsewhere.
var base64Vals = buildBase64Vals()

func buildBase64Vals() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for i := 0; i < len(base64Alphabet); i++ {
		t[base64Alphabet[i]] = byte(i)
	}
	return t
}

// decodeBase64URL converts a GPP segment into its bit payload.
func decodeBase64URL(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)*6+7)/8)
	var acc uint32
	bits := uint(0)
	for i := 0; i < len(s); i++ {
		v := base64Vals[s[i]]
		if v == 0xFF {
			return nil, &Base64Error{Offset: i, Char: s[i]}
		}
		acc = acc<<6 | uint32(v)
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	if bits > 0 {
		out = append(out, byte(acc<<(8-bits)))
	}
	return out, nil
}
