package character

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	docs := []string{
		`{"name":"Elsa"}`,
		`{"films":["Frozen","Frozen II"],"image":"https://img/elsa.png","name":"Elsa","tvShows":[],"url":"https://wiki/elsa"}`,
		`{"name":"O'Malley","nickname":"Thomas \"Abraham\""}`,
	}

	for _, raw := range docs {
		c, err := Decode(StoredDocument{ID: 7, Data: raw})
		require.NoError(t, err)
		assert.Equal(t, 7, c.ID)

		encoded, err := c.Doc.Encode()
		require.NoError(t, err)
		assert.JSONEq(t, raw, encoded)

		again, err := Decode(StoredDocument{ID: 7, Data: encoded})
		require.NoError(t, err)
		assert.Equal(t, c, again)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"name":`},
		{name: "array", data: `["Elsa"]`},
		{name: "null", data: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(StoredDocument{ID: 3, Data: tt.data})
			require.Error(t, err)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, 3, decodeErr.ID)
		})
	}
}

func TestDecode_IrregularTitleFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "films not a list", data: `{"name":"Goofy","films":"A Goofy Movie"}`},
		{name: "tvShows with numbers", data: `{"name":"Goofy","tvShows":[1]}`},
		{name: "films with null", data: `{"name":"Goofy","films":[null]}`},
		{name: "tvShows is an object", data: `{"name":"Goofy","tvShows":{"a":"b"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(StoredDocument{ID: 3, Data: tt.data})
			require.NoError(t, err)

			assert.Equal(t, "Goofy", c.Doc.Name())
			assert.Empty(t, c.Doc.Films())
			assert.Empty(t, c.Doc.TVShows())
		})
	}
}

func TestDecodeAll_FailsOnFirstBadRow(t *testing.T) {
	rows := []StoredDocument{
		{ID: 1, Data: `{"name":"Elsa"}`},
		{ID: 2, Data: `oops`},
		{ID: 3, Data: `{"name":"Anna"}`},
	}

	out, err := DecodeAll(rows)
	assert.Nil(t, out)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 2, decodeErr.ID)
}

func TestCharacter_Fields(t *testing.T) {
	c := Character{ID: 9, Doc: Document{FieldName: "Goofy", FieldID: 100}}
	fields := c.Fields()

	assert.Equal(t, 9, fields[FieldID])
	assert.Equal(t, "Goofy", fields[FieldName])
}

func TestDocument_EncodeDropsID(t *testing.T) {
	encoded, err := Document{FieldID: 5, FieldName: "Pluto"}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Pluto"}`, encoded)
}
