// ABOUTME: CSI escape sequence mappings for the arrow and paging keys
// ABOUTME: Keys are the bytes following ESC; anything absent resolves to Escape

package key

// legacySequences maps the bytes after ESC to the keys the decoder
// recognises. The decoder's single resolution point looks sequences up
// here.
var legacySequences = map[string]KeyType{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"[C":  KeyRight,
	"[D":  KeyLeft,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,
}

// resolve maps a collected escape continuation to its key.
func resolve(seq []byte) Key {
	if t, ok := legacySequences[string(seq)]; ok {
		return Key{Type: t}
	}
	return Escape()
}
