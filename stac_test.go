package landsat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_Item(t *testing.T) {
	s := NewScene(sceneFixture())
	item := s.Item()

	assert.Equal(t, StacVersion, item.Version)
	assert.Equal(t, "LC09_L1TP_116050_20220512_20220512_02_T1", item.Id)
	assert.Equal(t, "landsat-c2l1", item.Collection)
	assert.Equal(t, "LANDSAT_9", item.Properties["platform"])
	assert.Equal(t, 11.84, item.Properties["eo:cloud_cover"])

	// Absent properties are omitted, not emitted as null.
	_, ok := item.Properties["view:sun_azimuth"]
	assert.False(t, ok)

	require.Contains(t, item.Assets, "thumbnail")
	assert.Equal(t, "X", item.Assets["thumbnail"].Href)
	require.Contains(t, item.Assets, "B4")
	assert.Equal(t, "Red Band (B4)", item.Assets["B4"].Title)
}

func TestResultSet_ItemCollection(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))
	ic := rs.ItemCollection()

	assert.Equal(t, "FeatureCollection", ic.Type)
	assert.Equal(t, 2, ic.NumberReturned)
	require.Len(t, ic.Features, 2)
	assert.Equal(t, "LC09_L1TP_116050_20220512_20220512_02_T1", ic.Features[0].Id)
	assert.Equal(t, "LC08_L1TP_116050_20220504_20220511_02_T1", ic.Features[1].Id)

	// The collection must round-trip through JSON.
	data, err := json.Marshal(ic)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"numberReturned":2`)
}
