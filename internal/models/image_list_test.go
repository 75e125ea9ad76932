package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageList_Value(t *testing.T) {
	v, err := ImageList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = ImageList{"/a.png", "/b.png"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["/a.png","/b.png"]`, v)
}

func TestImageList_Scan(t *testing.T) {
	var l ImageList
	require.NoError(t, l.Scan(`["/a.png","/b.png"]`))
	assert.Equal(t, ImageList{"/a.png", "/b.png"}, l)

	require.NoError(t, l.Scan([]byte(`["/c.png"]`)))
	assert.Equal(t, ImageList{"/c.png"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	require.NoError(t, l.Scan(""))
	assert.Empty(t, l)
}

func TestImageList_ScanRejectsBadInput(t *testing.T) {
	var l ImageList
	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}
