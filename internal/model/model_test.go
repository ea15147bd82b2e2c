package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrValueJSONRoundTrip(t *testing.T) {
	single, err := json.Marshal(Attr("placehold.co/200"))
	require.NoError(t, err)
	assert.Equal(t, `"placehold.co/200"`, string(single))

	many, err := json.Marshal(Tokens("card", "wide"))
	require.NoError(t, err)
	assert.Equal(t, `["card","wide"]`, string(many))

	var v AttrValue
	require.NoError(t, json.Unmarshal([]byte(`"solo"`), &v))
	assert.Equal(t, Attr("solo"), v)
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &v))
	assert.Equal(t, Tokens("a", "b"), v)
	assert.Error(t, json.Unmarshal([]byte(`5`), &v))
}

func TestAttrValueHelpers(t *testing.T) {
	v := Tokens("card", "wide")
	assert.Equal(t, "card wide", v.String())
	assert.True(t, v.Has("wide"))
	assert.False(t, v.Has("narrow"))
}

func TestCaseConversions(t *testing.T) {
	assert.Equal(t, "background-color", CamelToKebab("backgroundColor"))
	assert.Equal(t, "z-index", CamelToKebab("zIndex"))
	assert.Equal(t, "width", CamelToKebab("width"))
	assert.Equal(t, "borderRadius", KebabToCamel("border-radius"))
	assert.Equal(t, "color", KebabToCamel("color"))
	assert.Equal(t, CamelToKebab(KebabToCamel("flex-direction")), "flex-direction")
}

func TestStyleCSS(t *testing.T) {
	css := StyleCSS(map[string]string{
		"backgroundColor": "#555",
		"width":           "200px",
		"border":          "",
	})
	assert.Equal(t, "background-color: #555; width: 200px;", css)
	assert.Equal(t, "", StyleCSS(nil))
}

func TestBorderRadiusShorthand(t *testing.T) {
	assert.Equal(t, [4]string{"5px", "5px", "5px", "5px"}, ParseBorderRadius("5px"))
	assert.Equal(t, [4]string{"1px", "2px", "1px", "2px"}, ParseBorderRadius("1px 2px"))
	assert.Equal(t, [4]string{"1px", "2px", "3px", "2px"}, ParseBorderRadius("1px 2px 3px"))
	assert.Equal(t, [4]string{"1px", "2px", "3px", "4px"}, ParseBorderRadius("1px 2px 3px 4px"))
	assert.Equal(t, [4]string{}, ParseBorderRadius(""))

	assert.Equal(t, "1px 0px 3px 0px", JoinBorderRadius([4]string{"1px", "", "3px", ""}))
}

func TestComponentCloneIsDeep(t *testing.T) {
	c := NewComponent("element-1", "div", "div")
	c.Style["width"] = "200px"
	c.Attributes = map[string]AttrValue{"class": Tokens("card")}
	c.Children = append(c.Children, NewComponent("element-2", "button", "button"))

	dup := c.Clone()
	dup.Style["width"] = "999px"
	dup.Attributes["class"] = Tokens("other")
	dup.Children[0].Name = "changed"

	assert.Equal(t, "200px", c.Style["width"])
	assert.Equal(t, Tokens("card"), c.Attributes["class"])
	assert.NotEqual(t, "changed", c.Children[0].Name)
}

func TestProjectNormalize(t *testing.T) {
	p := &Project{}
	p.Normalize()
	assert.NotNil(t, p.ElementCSS)
	assert.NotNil(t, p.ElementJS)
	assert.NotNil(t, p.GlobalSettings)
	assert.Equal(t, 1, p.NextID)
}

func TestNormalizeAdvancesIDCounter(t *testing.T) {
	p := &Project{
		Components: []*Component{
			{ID: "element-2", Children: []*Component{{ID: "element-9"}}},
			{ID: "hero"},
		},
		NextID: 3,
	}
	p.Normalize()
	assert.Equal(t, 10, p.NextID, "counter moves past every numeric id suffix")

	p.Normalize()
	assert.Equal(t, 10, p.NextID, "renormalizing does not advance further")
}

func TestResultEnvelope(t *testing.T) {
	assert.True(t, Success("ok").OK())
	assert.False(t, Info("skip").OK())
	res := Errorf("boom: %d", 7)
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "boom: 7", res.Message)
}
