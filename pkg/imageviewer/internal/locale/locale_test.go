package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		lang  string
		index int
		total int
		want  string
	}{
		{"en", 0, 5, "1 of 5"},
		{"en", 0, 1, "1 of 1"},
		{"es", 2, 5, "3 de 5"},
		{"xx", 1, 3, "2 of 3"},
		{"", 0, 2, "1 of 2"},
	}

	for _, tt := range tests {
		l, err := New(tt.lang)
		require.NoError(t, err)
		assert.Equal(t, tt.want, l.Counter(tt.index, tt.total), "lang=%q", tt.lang)
	}
}

func TestText(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "Close", en.Text(HintClose))
	assert.Equal(t, "No images", en.Text(EmptyGallery))
	assert.Equal(t, "NotAMessage", en.Text("NotAMessage"))

	es, err := New("es-MX")
	require.NoError(t, err)
	assert.Equal(t, "Cerrar", es.Text(HintClose))

	base, _ := es.Language().Base()
	assert.Equal(t, "es", base.String())
}
