package landsat

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedResponseFixture models a response to a search sorted ascending on
// eo:cloud_cover: the server returns features already ordered, and the
// client must preserve that order rather than re-sort.
const sortedResponseFixture = `{
	"type": "FeatureCollection",
	"meta": {"page": 1, "limit": 10, "found": 2, "returned": 2},
	"features": [
		{
			"type": "Feature",
			"id": "LC09_L1TP_116050_20220512_20220512_02_T1",
			"properties": {
				"platform": "LANDSAT_9",
				"eo:cloud_cover": 11.84,
				"landsat:cloud_cover_land": 12.01,
				"landsat:scene_id": "LC91160502022132LGN00"
			},
			"assets": {
				"thumbnail": {"href": "X"}
			}
		},
		{
			"type": "Feature",
			"id": "LC08_L1TP_116050_20220504_20220511_02_T1",
			"properties": {
				"platform": "LANDSAT_8",
				"eo:cloud_cover": 57.84,
				"landsat:cloud_cover_land": 60.33,
				"landsat:scene_id": "LC81160502022124LGN00"
			},
			"assets": {}
		}
	]
}`

func decodeFixture(t *testing.T, fixture string) *FeatureCollection {
	t.Helper()
	var fc FeatureCollection
	require.NoError(t, json.Unmarshal([]byte(fixture), &fc))
	return &fc
}

func TestResultSet_LengthAndOrder(t *testing.T) {
	fc := decodeFixture(t, sortedResponseFixture)
	rs := NewResultSet(fc)

	require.Equal(t, len(fc.Features), rs.Len())
	require.Len(t, rs.Scenes, 2)
	assert.Equal(t, "LC09_L1TP_116050_20220512_20220512_02_T1", rs.Scenes[0].ID)
	assert.Equal(t, "LC08_L1TP_116050_20220504_20220511_02_T1", rs.Scenes[1].ID)
}

func TestResultSet_CloudCoverPreservesServerOrder(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	assert.Equal(t, []float64{11.84, 57.84}, rs.CloudCover())
	assert.Equal(t, []float64{12.01, 60.33}, rs.CloudCoverLand())
}

func TestResultSet_SceneIDs(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	assert.Equal(t, []string{"LC91160502022132LGN00", "LC81160502022124LGN00"}, rs.SceneIDs())
	assert.Equal(t, []string{
		"LC09_L1TP_116050_20220512_20220512_02_T1",
		"LC08_L1TP_116050_20220504_20220511_02_T1",
	}, rs.IDs())
}

func TestResultSet_SingleSceneID(t *testing.T) {
	fixture := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"id": "LC09_L1TP_116050_20220512_20220512_02_T1",
				"properties": {"landsat:scene_id": "LC91160502022132LGN00"},
				"assets": {}
			}
		]
	}`
	rs := NewResultSet(decodeFixture(t, fixture))

	assert.Equal(t, []string{"LC91160502022132LGN00"}, rs.SceneIDs())
}

func TestResultSet_SceneIndexing(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	s, err := rs.Scene(1)
	require.NoError(t, err)
	assert.Equal(t, "LC08_L1TP_116050_20220504_20220511_02_T1", s.ID)

	_, err = rs.Scene(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = rs.Scene(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestResultSet_IterationIsRestartable(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	for pass := 0; pass < 2; pass++ {
		var ids []string
		for _, s := range rs.Scenes {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, rs.IDs(), ids, "pass %d", pass)
	}
}

func TestResultSet_Meta(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	require.NotNil(t, rs.Meta())
	assert.Equal(t, 2, rs.Meta().Found)
	assert.Equal(t, 10, rs.Meta().Limit)
}

func TestResultSet_ThumbnailFromResponse(t *testing.T) {
	rs := NewResultSet(decodeFixture(t, sortedResponseFixture))

	s, err := rs.Scene(0)
	require.NoError(t, err)
	assert.Equal(t, "X", s.Thumbnail)
}

func TestResultSet_Empty(t *testing.T) {
	rs := NewResultSet(&FeatureCollection{Type: "FeatureCollection"})
	assert.Equal(t, 0, rs.Len())
	assert.Empty(t, rs.IDs())

	rs = NewResultSet(nil)
	assert.Equal(t, 0, rs.Len())
}
