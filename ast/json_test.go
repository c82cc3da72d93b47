package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalAddsTypeDiscriminant(t *testing.T) {
	node := Paragraph{
		Children: []Inline{
			Strong{Children: []Inline{Text{Value: "hi"}}, Raw: "**hi**"},
		},
		Raw: "**hi**",
	}
	out, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "PARAGRAPH",
		"children": [
			{"type": "STRONG", "children": [{"type": "TEXT", "value": "hi"}], "raw": "**hi**"}
		],
		"raw": "**hi**"
	}`, string(out))
}

func TestMarshalOptionalFieldsAsNull(t *testing.T) {
	item := ListItem{Children: []Node{}, Raw: "- a"}
	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LIST_ITEM","children":[],"checked":null,"raw":"- a"}`, string(out))

	quote := BlockQuote{Children: []Node{}, Callout: "NOTE", Raw: "> [!NOTE]"}
	out, err = json.Marshal(quote)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"BLOCK_QUOTE","children":[],"callout":"NOTE","raw":"> [!NOTE]"}`, string(out))
}

func TestMarshalTableAlignment(t *testing.T) {
	table := Table{
		Header: [][]Inline{{Text{Value: "a"}}, {}},
		Rows:   [][][]Inline{},
		Align:  []Alignment{AlignCenter, AlignRight},
		Raw:    "|a||\n|:-:|--:|",
	}
	out, err := json.Marshal(table)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "TABLE", decoded["type"])
	assert.Equal(t, []any{"center", "right"}, decoded["align"])
}

func TestMarshalEmptyStruct(t *testing.T) {
	out, err := json.Marshal(LineBreak{})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"LINE_BREAK"}`, string(out))
}

func TestMarshalRejectsUnknownAlignment(t *testing.T) {
	_, err := json.Marshal(Table{Align: []Alignment{Alignment(9)}})
	assert.Error(t, err)
}
