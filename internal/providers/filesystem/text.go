package filesystem

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewTextReader decodes r to UTF-8. Input whose first bytes are valid UTF-8
// is passed through with invalid sequences replaced by U+FFFD; anything else
// is decoded with the charset chardet detects from those bytes.
func NewTextReader(r io.Reader) io.Reader {
	br := bufio.NewReaderSize(r, sniffLen)
	head, _ := br.Peek(sniffLen)

	return transform.NewReader(br, detectEncoding(head).NewDecoder())
}

func detectEncoding(head []byte) encoding.Encoding {
	if validUTF8Prefix(head) {
		return unicode.UTF8
	}

	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil || result == nil {
		return unicode.UTF8
	}
	enc, _ := charset.Lookup(result.Charset)
	if enc == nil {
		return unicode.UTF8
	}
	return enc
}

// validUTF8Prefix reports whether head is valid UTF-8, ignoring a rune cut
// short by the end of the sample
func validUTF8Prefix(head []byte) bool {
	for i := len(head) - 1; i >= 0 && i >= len(head)-utf8.UTFMax; i-- {
		if utf8.RuneStart(head[i]) {
			if !utf8.FullRune(head[i:]) {
				head = head[:i]
			}
			break
		}
	}
	return utf8.Valid(head)
}
