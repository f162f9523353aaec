package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicodeLower(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "ascii text", in: "Go Notes", want: "go notes"},
		{name: "accented text", in: "CAFÉ Ñandú", want: "café ñandú"},
		{name: "cyrillic text", in: "ЗАМЕТКА", want: "заметка"},
		{name: "blob", in: []byte("ÉTÉ"), want: []byte("été")},
		{name: "null", in: []byte(nil), want: nil},
		{name: "integer", in: int64(7), want: int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unicodeLower(tt.in))
		})
	}
}
